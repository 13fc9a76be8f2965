package server

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/hello/greeting"
	"github.com/xmidt-org/hello/logging"
	"github.com/xmidt-org/hello/xmetrics"
)

func newTestRegistry(t *testing.T) xmetrics.Registry {
	r, err := xmetrics.NewRegistry(&xmetrics.Options{DisableGoCollector: true, DisableProcessCollector: true}, Metrics)
	require.NoError(t, err)
	return r
}

func TestBuilderDefaults(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		builder = new(Builder)
	)

	primary := builder.BuildPrimary()
	require.NotNil(primary)
	assert.Equal(DefaultServerName, primary.Name())
	assert.Equal(":25565", primary.listen.Address)
	assert.Equal("tcp", primary.listen.Network)
	assert.Zero(primary.listen.MaxConnections)

	metrics, err := builder.BuildMetrics()
	assert.Nil(metrics)
	assert.NoError(err)

	all, err := builder.BuildAll()
	require.NoError(err)
	assert.Len(all, 1)
}

func TestBuilderNoRegistry(t *testing.T) {
	var (
		assert  = assert.New(t)
		builder = Builder{
			Configuration: &Configuration{ServerName: "test", MetricsAddress: "127.0.0.1:0"},
		}
	)

	metrics, err := builder.BuildMetrics()
	assert.Nil(metrics)
	assert.Equal(ErrNoRegistry, err)

	all, err := builder.BuildAll()
	assert.Nil(all)
	assert.Equal(ErrNoRegistry, err)
}

func TestBuilderBuildAll(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		capture  = logging.NewCaptureLogger()
		registry = newTestRegistry(t)

		builder = Builder{
			Logger: capture,
			Configuration: &Configuration{
				ServerName:     "test",
				Address:        "127.0.0.1",
				Port:           0,
				MaxConnections: 10,
				MetricsAddress: "127.0.0.1:0",
			},
			Registry: registry,
			PrimaryHandler: greeting.NewHandler(greeting.Options{
				Logger:   capture,
				Requests: registry.NewCounterVec(RequestCountName),
				Duration: registry.NewHistogramVec(RequestDurationName),
			}),
		}
	)

	all, err := builder.BuildAll()
	require.NoError(err)
	require.Len(all, 2)
	require.NoError(all.Run(new(sync.WaitGroup)))

	var (
		metrics = all[0].(*Server)
		primary = all[1].(*Server)
	)

	assert.Equal("test.metrics", metrics.Name())
	assert.Equal("test", primary.Name())
	assert.Equal(10, primary.listen.MaxConnections)

	primaryURL := fmt.Sprintf("http://%s", primary.Addr())
	code, body := get(t, primaryURL+"/")
	assert.Equal(http.StatusOK, code)
	assert.Equal(greeting.Text, body)

	code, _ = get(t, primaryURL+MetricsPath)
	assert.Equal(http.StatusNotFound, code)

	assert.Equal(1.0, testutil.ToFloat64(registry.NewCounterVec(RequestCountName).WithLabelValues("200", "get")))
	assert.Equal(1.0, testutil.ToFloat64(registry.NewCounterVec(RequestCountName).WithLabelValues("404", "get")))

	code, body = get(t, fmt.Sprintf("http://%s%s", metrics.Addr(), MetricsPath))
	assert.Equal(http.StatusOK, code)
	assert.True(strings.Contains(body, "hello_server_requests_total"))
	assert.True(strings.Contains(body, "hello_server_active_connections"))

	port := primary.Addr().(*net.TCPAddr).Port
	assert.Len(capture.Messages(fmt.Sprintf("Server is running on port %d", port)), 1)
}
