package logging

import (
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("caller", CallerKey())
	assert.Equal("msg", MessageKey())
	assert.Equal("error", ErrorKey())
	assert.Equal("ts", TimestampKey())
}

func TestDefaultLogger(t *testing.T) {
	assert := assert.New(t)
	assert.NotNil(DefaultLogger())
	assert.NoError(DefaultLogger().Log("key", "value"))
}

func TestNew(t *testing.T) {
	assert := assert.New(t)
	for _, o := range []*Options{nil, new(Options), {JSON: true, Level: "debug"}} {
		assert.NotNil(New(o))
	}
}

func TestNewFilter(t *testing.T) {
	testData := []struct {
		level    string
		expected int
	}{
		{"", 3},
		{"debug", 4},
		{"INFO", 3},
		{"warn", 2},
		{"error", 1},
		{"nosuchlevel", 1},
	}

	for _, record := range testData {
		t.Run(record.level, func(t *testing.T) {
			var (
				capture = NewCaptureLogger()
				logger  = NewFilter(capture, &Options{Level: record.level})
			)

			Debug(logger).Log(MessageKey(), "debug")
			Info(logger).Log(MessageKey(), "info")
			logger.Log(level.Key(), level.WarnValue(), MessageKey(), "warn")
			Error(logger).Log(MessageKey(), "error")

			assert.Len(t, capture.Entries(), record.expected)
		})
	}
}

func TestLevelHelpers(t *testing.T) {
	var (
		assert  = assert.New(t)
		capture = NewCaptureLogger()
	)

	Error(capture, "extra", 1).Log(MessageKey(), "error")
	Info(capture).Log(MessageKey(), "info")
	Debug(capture).Log(MessageKey(), "debug")

	entries := capture.Entries()
	assert.Len(entries, 3)
	assert.Equal(level.ErrorValue(), entries[0][level.Key()])
	assert.Equal(1, entries[0]["extra"])
	assert.Equal(level.InfoValue(), entries[1][level.Key()])
	assert.Equal(level.DebugValue(), entries[2][level.Key()])
	for _, e := range entries {
		assert.NotNil(e[CallerKey()])
	}
}
