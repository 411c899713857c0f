// Package config collects flag registrations from the packages that need
// configuration and resolves them from flags, environment variables and an
// optional yaml config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Flag struct {
	Name         string
	RegisterFunc func(flagSet *pflag.FlagSet, flagName string)
	Required     bool
	AssignFunc   func(flagName string)
}

var registeredFlags []*Flag

// RegisterFlags is called from the init functions of the packages that own
// configuration values. Load resolves all registrations at once.
func RegisterFlags(flags ...*Flag) {
	registeredFlags = append(registeredFlags, flags...)
}

var command = &cobra.Command{
	Run: func(_ *cobra.Command, _ []string) {
		// Empty func such that cobra will evaluate required flags, etc
	},
}

func init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if viper.IsSet("configFile") {
		viper.SetConfigFile(viper.GetString("configFile"))
	}

	_ = viper.ReadInConfig()
}

// Load registers all collected flags, binds them to viper and assigns the
// resolved values. Missing required flags are reported together.
func Load() error {
	for _, flag := range registeredFlags {
		flag.RegisterFunc(command.Flags(), flag.Name)
	}

	if err := viper.BindPFlags(command.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags, reason: %v", err)
	}

	if err := command.Execute(); err != nil {
		return err
	}

	var missingFlags error
	for _, flag := range registeredFlags {
		if !flag.Required {
			continue
		}
		if !viper.IsSet(flag.Name) {
			missingFlags = errors.Join(missingFlags, fmt.Errorf("missing required flag: %s", flag.Name))
		}
	}
	if missingFlags != nil {
		return missingFlags
	}

	for _, flag := range registeredFlags {
		flag.AssignFunc(flag.Name)
	}

	return nil
}
