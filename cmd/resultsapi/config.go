package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/w0lphi/SE2Einzelprojekt/internal/config"
)

var (
	apiHost  string
	apiPort  int
	logLevel string
)

func init() {
	config.RegisterFlags(
		&config.Flag{
			Name: "api-host",
			RegisterFunc: func(flagSet *pflag.FlagSet, flagName string) {
				flagSet.String(flagName, "0.0.0.0", "Host to bind the results API server to")
			},
			AssignFunc: func(flagName string) {
				apiHost = viper.GetString(flagName)
			},
		}, &config.Flag{
			Name: "api-port",
			RegisterFunc: func(flagSet *pflag.FlagSet, flagName string) {
				flagSet.Int(flagName, 0, "Port to host the results API server at")
			},
			Required: true,
			AssignFunc: func(flagName string) {
				apiPort = viper.GetInt(flagName)
			},
		}, &config.Flag{
			Name: "log-level",
			RegisterFunc: func(flagSet *pflag.FlagSet, flagName string) {
				flagSet.String(flagName, "info", "Log level of the results API server")
			},
			AssignFunc: func(flagName string) {
				logLevel = viper.GetString(flagName)
			},
		},
	)
}
