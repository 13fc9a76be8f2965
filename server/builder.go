package server

import (
	"errors"
	"net/http"

	"github.com/go-kit/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xmidt-org/hello/logging"
	"github.com/xmidt-org/hello/xlistener"
	"github.com/xmidt-org/hello/xmetrics"
)

// ErrNoRegistry is returned when a metrics server is configured but the Builder has no Registry
var ErrNoRegistry = errors.New("a metrics address was configured without a metrics registry")

// Builder implements the instantiation logic for each server component.
type Builder struct {
	// Logger is the base logger for every server.  If unset, logging.DefaultLogger() is used.
	Logger log.Logger

	// Configuration is the parsed configuration.  If unset, NewConfiguration() is used.
	Configuration *Configuration

	// PrimaryHandler is the http.Handler used for the primary server
	PrimaryHandler http.Handler

	// Registry is the optional metrics registry.  It must contain the Metrics module when set.
	Registry xmetrics.Registry
}

func (b *Builder) configuration() *Configuration {
	if b.Configuration != nil {
		return b.Configuration
	}

	return NewConfiguration()
}

func (b *Builder) logger() log.Logger {
	if b.Logger != nil {
		return b.Logger
	}

	return logging.DefaultLogger()
}

// BuildPrimary returns the Server that listens on the configured port
func (b *Builder) BuildPrimary() *Server {
	c := b.configuration()
	listen := xlistener.Options{
		MaxConnections: c.MaxConnections,
	}

	if b.Registry != nil {
		listen.Active = b.Registry.NewGauge(ActiveConnectionsName)
		listen.Rejected = b.Registry.NewCounter(RejectedConnectionsName)
	}

	return NewServer(c.ServerName, c.PrimaryAddress(), b.logger(), b.PrimaryHandler, listen)
}

// BuildMetrics returns the Server that exposes the Registry, or nil when no metrics
// address is configured.
func (b *Builder) BuildMetrics() (*Server, error) {
	c := b.configuration()
	if len(c.MetricsAddress) == 0 {
		return nil, nil
	}

	if b.Registry == nil {
		return nil, ErrNoRegistry
	}

	router := mux.NewRouter()
	router.Handle(MetricsPath, promhttp.HandlerFor(b.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return NewServer(c.ServerName+metricsSuffix, c.MetricsAddress, b.logger(), router, xlistener.Options{}), nil
}

// BuildAll returns a RunnableSet with the metrics server, when configured, followed by the primary server
func (b *Builder) BuildAll() (RunnableSet, error) {
	metrics, err := b.BuildMetrics()
	if err != nil {
		return nil, err
	}

	var set RunnableSet
	if metrics != nil {
		set = append(set, metrics)
	}

	return append(set, b.BuildPrimary()), nil
}
