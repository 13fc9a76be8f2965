package logginghttp

import (
	"net/http"

	"github.com/go-kit/log"
	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/hello/logging"
)

var (
	requestIDKey     interface{} = "requestID"
	requestMethodKey interface{} = "requestMethod"
	requestURIKey    interface{} = "requestURI"
	remoteAddrKey    interface{} = "remoteAddr"
)

// RequestIDKey returns the contextual logging key for the per-request identifier
func RequestIDKey() interface{} {
	return requestIDKey
}

// RequestMethodKey returns the contextual logging key for an HTTP request's method
func RequestMethodKey() interface{} {
	return requestMethodKey
}

// RequestURIKey returns the contextual logging key for an HTTP request's unmodified URI
func RequestURIKey() interface{} {
	return requestURIKey
}

// RemoteAddrKey returns the contextual logging key for an HTTP request's remote address,
// as filled in by the enclosing http.Server.
func RemoteAddrKey() interface{} {
	return remoteAddrKey
}

// PopulateLogger produces an Alice-style decorator that places a request-scoped go-kit logger
// into the request context.  Each request gets a fresh ksuid under RequestIDKey along with the
// method, URI, and remote address.  Downstream code retrieves it via logging.GetLogger.
//
// If base is nil, the default logger is decorated for each request.
func PopulateLogger(base log.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = logging.DefaultLogger()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, request *http.Request) {
			ctx := logging.WithLogger(
				request.Context(),
				log.With(
					base,
					requestIDKey, ksuid.New().String(),
					requestMethodKey, request.Method,
					requestURIKey, request.RequestURI,
					remoteAddrKey, request.RemoteAddr,
				),
			)

			next.ServeHTTP(rw, request.WithContext(ctx))
		})
	}
}
