package logging

import (
	"fmt"
	"sync"

	"github.com/go-kit/log"
)

// Entry is a single log event recorded by a CaptureLogger, keyed by logging key.
type Entry map[interface{}]interface{}

// Message returns the value logged under MessageKey, or the empty string if none was logged.
func (e Entry) Message() string {
	m, _ := e[MessageKey()].(string)
	return m
}

// CaptureLogger is a go-kit Logger which records each log event for later
// assertions.  Primarily useful for test code.
//
// The Log method panics if the number of key/value pairs is odd.
type CaptureLogger struct {
	lock    sync.Mutex
	entries []Entry
}

var _ log.Logger = (*CaptureLogger)(nil)

// NewCaptureLogger returns an empty CaptureLogger
func NewCaptureLogger() *CaptureLogger {
	return new(CaptureLogger)
}

func (cl *CaptureLogger) Log(kv ...interface{}) error {
	if len(kv)%2 != 0 {
		panic(fmt.Errorf("Invalid key/value count: %d", len(kv)))
	}

	e := make(Entry, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		e[kv[i]] = kv[i+1]
	}

	cl.lock.Lock()
	cl.entries = append(cl.entries, e)
	cl.lock.Unlock()
	return nil
}

// Entries returns a copy of the events logged so far, in order
func (cl *CaptureLogger) Entries() []Entry {
	cl.lock.Lock()
	defer cl.lock.Unlock()
	return append([]Entry(nil), cl.entries...)
}

// Messages returns the subset of entries whose message equals msg
func (cl *CaptureLogger) Messages(msg string) []Entry {
	var matched []Entry
	for _, e := range cl.Entries() {
		if e.Message() == msg {
			matched = append(matched, e)
		}
	}

	return matched
}
