package xmetrics

import (
	"fmt"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is a Prometheus registry and a source of go-kit metrics all in one.  Metrics are
// preregistered from modules when the Registry is created; asking for an unknown name is a
// programming error and panics.  The set of metrics is fixed after creation, so a Registry
// is safe for concurrent use.
type Registry interface {
	prometheus.Gatherer
	prometheus.Registerer

	NewCounterVec(name string) *prometheus.CounterVec
	NewHistogramVec(name string) *prometheus.HistogramVec

	NewCounter(name string) metrics.Counter
	NewGauge(name string) metrics.Gauge
}

type registry struct {
	*prometheus.Registry

	cache map[string]prometheus.Collector
}

func (r *registry) get(name string) prometheus.Collector {
	c, ok := r.cache[name]
	if !ok {
		panic(fmt.Errorf("The metric %s has not been registered", name))
	}

	return c
}

func (r *registry) NewCounterVec(name string) *prometheus.CounterVec {
	if cv, ok := r.get(name).(*prometheus.CounterVec); ok {
		return cv
	}

	panic(fmt.Errorf("The metric %s is not a counter", name))
}

func (r *registry) gaugeVec(name string) *prometheus.GaugeVec {
	if gv, ok := r.get(name).(*prometheus.GaugeVec); ok {
		return gv
	}

	panic(fmt.Errorf("The metric %s is not a gauge", name))
}

func (r *registry) NewHistogramVec(name string) *prometheus.HistogramVec {
	if hv, ok := r.get(name).(*prometheus.HistogramVec); ok {
		return hv
	}

	panic(fmt.Errorf("The metric %s is not a histogram", name))
}

func (r *registry) NewCounter(name string) metrics.Counter {
	return gokitprometheus.NewCounter(r.NewCounterVec(name))
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	return gokitprometheus.NewGauge(r.gaugeVec(name))
}

// NewRegistry creates a Registry and preregisters every metric returned by the given modules.
// Duplicate names across modules are an error.
func NewRegistry(o *Options, modules ...Module) (Registry, error) {
	r := &registry{
		Registry: o.registry(),
		cache:    make(map[string]prometheus.Collector),
	}

	for _, module := range modules {
		for _, m := range module() {
			if _, ok := r.cache[m.Name]; ok {
				return nil, fmt.Errorf("duplicate metric with name: %s", m.Name)
			}

			c, err := NewCollector(o.namespace(), o.subsystem(), m)
			if err != nil {
				return nil, err
			}

			if err := r.Registry.Register(c); err != nil {
				return nil, fmt.Errorf("Error while preregistering metric %s: %s", m.Name, err)
			}

			r.cache[m.Name] = c
		}
	}

	return r, nil
}
