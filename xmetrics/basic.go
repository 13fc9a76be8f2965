package xmetrics

// Adder represents a metric to which deltas can be added.  Go-kit's metrics.Counter, metrics.Gauge, and
// several prometheus interfaces implement this interface.
type Adder interface {
	Add(float64)
}

// Incrementer represents a metric that can only be incremented by one, e.g. a connection rejection count.
type Incrementer interface {
	Inc()
}

type incrementer struct {
	Adder
}

func (i incrementer) Inc() {
	i.Add(1.0)
}

// NewIncrementer adapts an Adder onto an Incrementer
func NewIncrementer(a Adder) Incrementer {
	return incrementer{a}
}
