package xmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	DefaultNamespace = "hello"
	DefaultSubsystem = "server"
)

// Options is the configurable options for creating a Prometheus registry
type Options struct {
	// Namespace is the default namespace for all metrics.  If not supplied, DefaultNamespace is used.
	Namespace string `json:"namespace"`

	// Subsystem is the default subsystem for all metrics.  If not supplied, DefaultSubsystem is used.
	Subsystem string `json:"subsystem"`

	// Pedantic indicates whether the registry is created via NewPedanticRegistry().
	Pedantic bool `json:"pedantic"`

	// DisableGoCollector controls whether the Go collector is registered.
	DisableGoCollector bool `json:"disableGoCollector"`

	// DisableProcessCollector controls whether the process collector is registered.
	DisableProcessCollector bool `json:"disableProcessCollector"`
}

func (o *Options) namespace() string {
	if o != nil && len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o *Options) subsystem() string {
	if o != nil && len(o.Subsystem) > 0 {
		return o.Subsystem
	}

	return DefaultSubsystem
}

func (o *Options) registry() *prometheus.Registry {
	var pr *prometheus.Registry
	if o != nil && o.Pedantic {
		pr = prometheus.NewPedanticRegistry()
	} else {
		pr = prometheus.NewRegistry()
	}

	if o == nil || !o.DisableGoCollector {
		pr.MustRegister(collectors.NewGoCollector())
	}

	if o == nil || !o.DisableProcessCollector {
		pr.MustRegister(collectors.NewProcessCollector(
			collectors.ProcessCollectorOpts{Namespace: o.namespace()},
		))
	}

	return pr
}
