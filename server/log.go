package server

import (
	stdlog "log"
	"net"
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/xmidt-org/hello/logging"
)

// NewErrorLog adapts a go-kit Logger onto a golang Logger appropriate for http.Server.ErrorLog
func NewErrorLog(logger log.Logger) *stdlog.Logger {
	return stdlog.New(
		log.NewStdlibAdapter(logging.Error(logger)),
		"", // having a prefix gives the adapter trouble
		stdlog.LstdFlags|stdlog.LUTC,
	)
}

// NewConnectionStateLogger produces a function appropriate for http.Server.ConnState.
// The returned function logs a debug statement for each state change.
func NewConnectionStateLogger(logger log.Logger) func(net.Conn, http.ConnState) {
	return func(c net.Conn, cs http.ConnState) {
		logger.Log(
			level.Key(), level.DebugValue(),
			"remoteAddress", c.RemoteAddr().String(),
			"state", cs.String(),
		)
	}
}
