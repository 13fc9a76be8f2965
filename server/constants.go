package server

const (
	// DefaultServerName is the default value for the server name, also used as the
	// configuration file name and environment prefix.
	DefaultServerName = "hello"

	// DefaultPort is the default value for the port of the primary server
	DefaultPort = 25565

	// MetricsPath is the path on the metrics listener that serves Prometheus exposition
	MetricsPath = "/metrics"

	// metricsSuffix is appended to the server name to produce the metrics server name
	metricsSuffix = ".metrics"
)
