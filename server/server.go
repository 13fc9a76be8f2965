package server

import (
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/go-kit/log"
	"github.com/xmidt-org/hello/logging"
	"github.com/xmidt-org/hello/xlistener"
)

// Server is a Runnable HTTP server.  Its lifecycle has two states: created, and listening
// once Run has bound its listener.  There is no transition out of listening; the listener
// is held until the process exits.
type Server struct {
	name     string
	logger   log.Logger
	listen   xlistener.Options
	executor *http.Server

	once sync.Once
	err  error

	lock     sync.RWMutex
	listener net.Listener
}

// Name returns the human-readable identifier for this server
func (s *Server) Name() string {
	return s.name
}

// Addr returns the bound listen address, or nil if the server is not listening.  It is
// safe to call concurrently with Run.
func (s *Server) Addr() net.Addr {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.listener != nil {
		return s.listener.Addr()
	}

	return nil
}

// Run binds this server's listener and then serves on a spawned goroutine, which is
// tracked by waitGroup.  Binding happens before Run returns, so a port that is in use
// or not permitted yields a *BindError here and nothing is served.
//
// Run is idempotent.  Subsequent invocations have no effect and return the result of the first.
func (s *Server) Run(waitGroup *sync.WaitGroup) error {
	s.once.Do(func() {
		listener, err := xlistener.New(s.listen)
		if err != nil {
			s.err = &BindError{Address: s.listen.Address, Err: err}
			logging.Error(s.logger).Log(logging.MessageKey(), "unable to start server", logging.ErrorKey(), s.err)
			return
		}

		s.lock.Lock()
		s.listener = listener
		s.lock.Unlock()

		logging.Info(s.logger).Log(logging.MessageKey(), startedMessage(listener.Addr()))

		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			err := s.executor.Serve(listener)
			if err != http.ErrServerClosed {
				logging.Error(s.logger).Log(logging.MessageKey(), "server exited", logging.ErrorKey(), err)
			}
		}()
	})

	return s.err
}

func startedMessage(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return fmt.Sprintf("Server is running on port %d", tcp.Port)
	}

	return fmt.Sprintf("Server is running on %s", addr)
}

// NewServer creates a Server that will bind address and dispatch to handler.  The options
// Logger, Network, Address, and Next fields are overwritten.
func NewServer(name, address string, logger log.Logger, handler http.Handler, listen xlistener.Options) *Server {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	logger = log.With(logger, "server", name)
	listen.Logger = logger
	listen.Network = "tcp"
	listen.Address = address
	listen.Next = nil

	return &Server{
		name:   name,
		logger: logger,
		listen: listen,
		executor: &http.Server{
			Handler:   handler,
			ConnState: NewConnectionStateLogger(logger),
			ErrorLog:  NewErrorLog(logger),
		},
	}
}
