package server

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FileFlag is the command line flag naming an explicit configuration file
	FileFlag = "file"

	// DebugFlag is the command line flag that forces debug logging
	DebugFlag = "debug"
)

// NewFlagSet produces the standard command line flags for applicationName
func NewFlagSet(applicationName string) *pflag.FlagSet {
	f := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	f.StringP(FileFlag, "f", "", "the configuration file to use.  Overrides the search path.")
	f.BoolP(DebugFlag, "d", false, "enables debug logging.  Overrides configuration.")
	return f
}

// NewViper produces a Viper instance configured with the conventions of this package.
// The applicationName is used as the configuration file name, the environment prefix,
// and to generate the paths under /etc and $HOME to look for configuration files.
func NewViper(applicationName string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(applicationName)
	v.AddConfigPath(fmt.Sprintf("/etc/%s", applicationName))
	v.AddConfigPath(fmt.Sprintf("$HOME/.%s", applicationName))
	v.AddConfigPath(".")

	v.SetEnvPrefix(applicationName)
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// Configure parses arguments with the flag set and binds the result to v.  If the file flag
// was given, it replaces the configuration search path.
func Configure(arguments []string, f *pflag.FlagSet, v *viper.Viper) error {
	if err := f.Parse(arguments); err != nil {
		return err
	}

	if err := v.BindPFlags(f); err != nil {
		return err
	}

	if file, _ := f.GetString(FileFlag); len(file) > 0 {
		v.SetConfigFile(file)
	}

	return nil
}

// ReadInConfig reads the configuration file, if any.  Finding no file on the search path
// is not an error, since every key has a default.  An explicit file that cannot be read is.
func ReadInConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
		return nil
	}

	return errors.Wrap(err, "unable to read configuration")
}
