package server

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/hello/logging"
)

func TestNewConfiguration(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = NewConfiguration()
	)

	assert.Equal(DefaultServerName, c.ServerName)
	assert.Equal(25565, c.Port)
	assert.Equal(":25565", c.PrimaryAddress())
	assert.Empty(c.MetricsAddress)
	assert.Zero(c.MaxConnections)
	assert.Nil(c.Log)
	assert.Nil(c.Metrics)
}

func TestConfigurationPrimaryAddress(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("127.0.0.1:8080", (&Configuration{Address: "127.0.0.1", Port: 8080}).PrimaryAddress())
	assert.Equal("[::1]:0", (&Configuration{Address: "::1"}).PrimaryAddress())
}

func readViper(t *testing.T, configuration string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(configuration)))
	return v
}

func testFromViperNil(t *testing.T) {
	var (
		assert = assert.New(t)
		c, err = FromViper(nil)
	)

	assert.NoError(err)
	assert.Equal(NewConfiguration(), c)
}

func testFromViperDefaults(t *testing.T) {
	var (
		assert = assert.New(t)
		c, err = FromViper(readViper(t, ""))

		expected = NewConfiguration()
	)

	expected.Log = new(logging.Options)
	assert.NoError(err)
	assert.Equal(expected, c)
}

func testFromViperFull(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		c, err  = FromViper(readViper(t, `
serverName: greeter
address: 127.0.0.1
port: 8080
maxConnections: 100
metricsAddress: ":9090"
log:
  level: debug
  json: true
metrics:
  namespace: test
`))
	)

	require.NoError(err)
	require.NotNil(c)
	assert.Equal("greeter", c.ServerName)
	assert.Equal("127.0.0.1:8080", c.PrimaryAddress())
	assert.Equal(100, c.MaxConnections)
	assert.Equal(":9090", c.MetricsAddress)

	require.NotNil(c.Log)
	assert.Equal("DEBUG", c.Log.Level)
	assert.True(c.Log.JSON)

	require.NotNil(c.Metrics)
	assert.Equal("test", c.Metrics.Namespace)
}

func testFromViperInvalidPort(t *testing.T) {
	for _, configuration := range []string{"port: -1\n", "port: 65536\n"} {
		c, err := FromViper(readViper(t, configuration))
		assert.Nil(t, c)
		assert.Error(t, err)
	}
}

func testFromViperUnmarshalError(t *testing.T) {
	c, err := FromViper(readViper(t, "port: not a port\n"))
	assert.Nil(t, c)
	assert.Error(t, err)
}

func testFromViperEmptyName(t *testing.T) {
	c, err := FromViper(readViper(t, "serverName: \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerName, c.ServerName)
}

func testFromViperBadLogLevel(t *testing.T) {
	c, err := FromViper(readViper(t, "log:\n  level: chatty\n"))
	assert.Nil(t, c)
	assert.Error(t, err)
}

func TestFromViper(t *testing.T) {
	t.Run("Nil", testFromViperNil)
	t.Run("Defaults", testFromViperDefaults)
	t.Run("Full", testFromViperFull)
	t.Run("InvalidPort", testFromViperInvalidPort)
	t.Run("UnmarshalError", testFromViperUnmarshalError)
	t.Run("EmptyName", testFromViperEmptyName)
	t.Run("BadLogLevel", testFromViperBadLogLevel)
}
