package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-kit/log"
	"github.com/segmentio/ksuid"
	"github.com/spf13/pflag"
	"github.com/xmidt-org/hello/greeting"
	"github.com/xmidt-org/hello/logging"
	"github.com/xmidt-org/hello/server"
	"github.com/xmidt-org/hello/xmetrics"
)

const (
	applicationName = server.DefaultServerName
)

// hello runs the service until one of the awaited signals arrives, or until startup fails.
// The returned value is the process exit code.
func hello(arguments []string, stderr io.Writer, signals <-chan os.Signal) int {
	var (
		f = server.NewFlagSet(applicationName)
		v = server.NewViper(applicationName)
	)

	f.SetOutput(stderr)
	if err := server.Configure(arguments, f, v); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}

		fmt.Fprintf(stderr, "Unable to parse command line: %s\n", err)
		return 1
	}

	if err := server.ReadInConfig(v); err != nil {
		fmt.Fprintf(stderr, "Unable to read configuration: %s\n", err)
		return 1
	}

	c, err := server.FromViper(v)
	if err != nil {
		fmt.Fprintf(stderr, "Unable to unmarshal configuration: %s\n", err)
		return 1
	}

	if v.GetBool(server.DebugFlag) {
		if c.Log == nil {
			c.Log = new(logging.Options)
		}

		c.Log.Level = "DEBUG"
	}

	logger := log.With(logging.New(c.Log), "instance", ksuid.New().String())
	logging.Debug(logger).Log(logging.MessageKey(), "configuration loaded", "configFile", v.ConfigFileUsed())

	registry, err := xmetrics.NewRegistry(c.Metrics, server.Metrics)
	if err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "Unable to create metrics registry", logging.ErrorKey(), err)
		return 1
	}

	builder := server.Builder{
		Logger:        logger,
		Configuration: c,
		Registry:      registry,
		PrimaryHandler: greeting.NewHandler(greeting.Options{
			Logger:   logger,
			Requests: registry.NewCounterVec(server.RequestCountName),
			Duration: registry.NewHistogramVec(server.RequestDurationName),
		}),
	}

	runnables, err := builder.BuildAll()
	if err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "Unable to build servers", logging.ErrorKey(), err)
		return 1
	}

	waitGroup := new(sync.WaitGroup)
	if err := runnables.Run(waitGroup); err != nil {
		// the failing server has already logged the details
		return 1
	}

	s := server.SignalWait(logger, signals, os.Interrupt, syscall.SIGTERM)
	logging.Info(logger).Log(logging.MessageKey(), "exiting", "signal", fmt.Sprint(s))
	return 0
}

func main() {
	signals := make(chan os.Signal, 10)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	os.Exit(hello(os.Args[1:], os.Stderr, signals))
}
