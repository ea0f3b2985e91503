package sapling

import (
	"github.com/sirupsen/logrus"
)

/*
GainObserver is an interface wrapping the ObserveGain method, that can be
used to follow the information gain computed for every attribute each
time a node of a tree is split.
*/
type GainObserver interface {
	ObserveGain(Gain)
}

/*
GainObserverFunc wraps a function with the ObserveGain method signature to
implement the GainObserver interface
*/
type GainObserverFunc func(Gain)

/*
ObserveGain takes a Gain and invokes the GainObserverFunc with it.
*/
func (gof GainObserverFunc) ObserveGain(g Gain) {
	gof(g)
}

/*
LogObserver takes a logrus.FieldLogger and returns a GainObserver that
logs every gain at debug level with attribute and gain fields.
*/
func LogObserver(l logrus.FieldLogger) GainObserver {
	return GainObserverFunc(func(g Gain) {
		l.WithFields(logrus.Fields{
			"attribute": g.Attribute,
			"gain":      g.Gain,
		}).Debug("information gain")
	})
}

/*
GainRecorder is a GainObserver that keeps every observed gain in the
order it was observed.
*/
type GainRecorder struct {
	Gains []Gain
}

// ObserveGain appends the gain to the recorder
func (gr *GainRecorder) ObserveGain(g Gain) {
	gr.Gains = append(gr.Gains, g)
}

/*
MultiObserver takes any number of observers and returns a GainObserver
that reports every gain to each of them in order.
*/
func MultiObserver(observers ...GainObserver) GainObserver {
	return GainObserverFunc(func(g Gain) {
		for _, o := range observers {
			if o != nil {
				o.ObserveGain(g)
			}
		}
	})
}
