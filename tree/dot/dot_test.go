package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pbanos/sapling/tree"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	job := tree.NewInternalNode("job")
	require.NoError(t, job.Add(0, tree.NewLeaf("no")))
	require.NoError(t, job.Add(1, tree.NewLeaf("yes")))
	house := tree.NewInternalNode("house")
	require.NoError(t, house.Add(0, job))
	require.NoError(t, house.Add(1, tree.NewLeaf("yes")))

	out, err := Render(house)
	require.NoError(t, err)
	require.Contains(t, out, "digraph tree")
	for _, fragment := range []string{
		`label="house"`,
		`label="job"`,
		`label="no"`,
		`label="yes"`,
		`shape=box`,
		`shape=ellipse`,
		`n0->n1`,
		`n1->n2`,
		`n1->n3`,
		`n0->n4`,
	} {
		require.Contains(t, out, fragment)
	}
	require.Equal(t, 4, strings.Count(out, "->"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, house))
	require.Equal(t, out, buf.String())
}

func TestRenderLeaf(t *testing.T) {
	out, err := Render(tree.NewLeaf("yes"))
	require.NoError(t, err)
	require.Contains(t, out, `label="yes"`)
	require.NotContains(t, out, "->")
}
