package greeting

import (
	"io"
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xmidt-org/hello/logging"
	"github.com/xmidt-org/hello/logging/logginghttp"
)

const (
	// Text is the body written for every GET of the root path
	Text = "Hello, World!"

	// Path is the only route served
	Path = "/"

	contentType = "text/plain; charset=utf-8"
)

// Handler writes the greeting.  It holds no state, so every response is identical.
type Handler struct{}

func (Handler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	response.Header().Set("Content-Type", contentType)
	response.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(response, Text); err != nil {
		logging.GetLogger(request.Context()).Log(level.Key(), level.ErrorValue(), logging.MessageKey(), "unable to write greeting", logging.ErrorKey(), err)
		return
	}

	logging.GetLogger(request.Context()).Log(level.Key(), level.DebugValue(), logging.MessageKey(), "greeted")
}

// Options configures the handler returned by NewHandler.  The zero value is valid.
type Options struct {
	// Logger is the base logger decorated per request.  If unset, logging.DefaultLogger() is used.
	Logger log.Logger

	// Requests, if set, counts every request by "code" and "method", including the ones
	// that fall through to not found.
	Requests *prometheus.CounterVec

	// Duration, if set, observes the latency of every request in seconds.
	Duration prometheus.ObserverVec
}

// NewRouter returns the route table: GET on Path and nothing else.  Unknown paths get the
// router's 404, and other methods on Path get its 405.
func NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.Handle(Path, Handler{}).Methods(http.MethodGet)
	return router
}

// NewHandler decorates NewRouter with request logging and, when configured, request metrics.
func NewHandler(o Options) http.Handler {
	chain := alice.New(logginghttp.PopulateLogger(o.Logger))

	if o.Duration != nil {
		chain = chain.Append(func(next http.Handler) http.Handler {
			return promhttp.InstrumentHandlerDuration(o.Duration, next)
		})
	}

	if o.Requests != nil {
		chain = chain.Append(func(next http.Handler) http.Handler {
			return promhttp.InstrumentHandlerCounter(o.Requests, next)
		})
	}

	return chain.Then(NewRouter())
}
