package main

import "os"

// exit is replaced in tests to observe exit codes without ending the process
var exit = os.Exit
