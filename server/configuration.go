package server

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/xmidt-org/hello/logging"
	"github.com/xmidt-org/hello/xmetrics"
)

// Configuration holds the options for the hello service.  The zero value is not the default;
// use NewConfiguration or FromViper to get a Configuration with defaults applied.
type Configuration struct {
	// ServerName is the human-readable name for this server, used to label log output.
	ServerName string `json:"serverName"`

	// Address is the host portion of the primary listen address.  Empty means all interfaces.
	Address string `json:"address"`

	// Port is the primary port for this server.  Zero binds an ephemeral port.
	Port int `json:"port"`

	// MaxConnections caps concurrent connections on the primary listener.  Nonpositive means no cap.
	MaxConnections int `json:"maxConnections"`

	// MetricsAddress is the full listen address of the optional metrics server.  Empty disables it.
	MetricsAddress string `json:"metricsAddress"`

	// Log configures logging output.  Nil means stdout at INFO.  FromViper fills this from
	// the "log" section through logging.FromViper.
	Log *logging.Options `json:"log" mapstructure:"-"`

	// Metrics configures the Prometheus registry.  Nil means package defaults.
	Metrics *xmetrics.Options `json:"metrics"`
}

// NewConfiguration returns a Configuration with all defaults applied
func NewConfiguration() *Configuration {
	return &Configuration{
		ServerName: DefaultServerName,
		Port:       DefaultPort,
	}
}

// PrimaryAddress returns the listen address for the primary server
func (c *Configuration) PrimaryAddress() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// SetDefaults installs the Configuration defaults into a Viper instance so that
// environment variables can override keys that appear in no configuration file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("serverName", DefaultServerName)
	v.SetDefault("address", "")
	v.SetDefault("port", DefaultPort)
	v.SetDefault("maxConnections", 0)
	v.SetDefault("metricsAddress", "")
}

// FromViper produces a Configuration from a (possibly nil) Viper instance.  Keys missing
// from v take their defaults.
func FromViper(v *viper.Viper) (*Configuration, error) {
	c := NewConfiguration()
	if v == nil {
		return c, nil
	}

	var err error
	if err = v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal configuration")
	}

	if c.Port < 0 || c.Port > 65535 {
		return nil, errors.Errorf("invalid port: %d", c.Port)
	}

	if c.Log, err = logging.FromViper(logging.Sub(v)); err != nil {
		return nil, errors.Wrap(err, "unable to read logging configuration")
	}

	if len(c.ServerName) == 0 {
		c.ServerName = DefaultServerName
	}

	return c, nil
}
