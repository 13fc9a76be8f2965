package server

import "github.com/xmidt-org/hello/xmetrics"

const (
	RequestCountName        = "requests_total"
	RequestDurationName     = "request_duration_seconds"
	ActiveConnectionsName   = "active_connections"
	RejectedConnectionsName = "rejected_connections_total"
)

// Metrics is the xmetrics module for the primary server
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       RequestCountName,
			Type:       xmetrics.CounterType,
			Help:       "A counter for requests to the handler",
			LabelNames: []string{"code", "method"},
		},
		{
			Name:    RequestDurationName,
			Type:    xmetrics.HistogramType,
			Help:    "A histogram of latencies for requests.",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
		},
		{
			Name: ActiveConnectionsName,
			Type: xmetrics.GaugeType,
			Help: "The number of active connections on the primary listener",
		},
		{
			Name: RejectedConnectionsName,
			Type: xmetrics.CounterType,
			Help: "The number of connections rejected because of the connection cap",
		},
	}
}
