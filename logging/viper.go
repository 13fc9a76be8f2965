package logging

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// LoggingKey is the configuration key holding the logging options
	LoggingKey = "log"
)

// Sub returns the child Viper under LoggingKey.  Nil is returned if v is nil or has no
// logging section.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(LoggingKey)
	}

	return nil
}

// FromViper unmarshals logging Options from v, which is normally the result of Sub.
// A nil v yields the default Options.  The level is upper-cased, and a level NewFilter
// does not recognize is an error rather than a silent fallback to ERROR.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v == nil {
		return o, nil
	}

	if err := v.Unmarshal(o); err != nil {
		return nil, err
	}

	o.Level = strings.ToUpper(strings.TrimSpace(o.Level))
	switch o.Level {
	case "", "DEBUG", "INFO", "WARN", "ERROR":
		return o, nil

	default:
		return nil, fmt.Errorf("unrecognized log level: %s", o.Level)
	}
}
