package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rohanthewiz/segroute/consts"
	"github.com/rohanthewiz/serr"
)

// Config holds the settings read from the environment.
type Config struct {
	LogLevel string
	Optimize bool
	Verbose  bool
}

// LoadConfig reads settings from the process environment, falling back to
// envFile. With no envFile, .env is used when present.
func LoadConfig(envFile string) (Config, error) {
	fileEnv := map[string]string{}

	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		if err != nil {
			return Config{}, serr.Wrap(err, "could not read env file "+envFile)
		}
		fileEnv = vals
	} else if vals, err := godotenv.Read(); err == nil {
		fileEnv = vals
	}

	lookup := func(key string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		return fileEnv[key]
	}

	cfg := Config{
		LogLevel: "info",
		Optimize: true,
	}

	if value := lookup(consts.EnvLogLevel); value != "" {
		cfg.LogLevel = value
	}

	var err error
	if cfg.Optimize, err = getEnvBool(lookup, consts.EnvOptimize, cfg.Optimize); err != nil {
		return Config{}, err
	}
	if cfg.Verbose, err = getEnvBool(lookup, consts.EnvVerbose, cfg.Verbose); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnvBool(lookup func(string) string, key string, defaultValue bool) (bool, error) {
	value := lookup(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, serr.Wrap(err, "invalid boolean in "+key)
	}
	return parsed, nil
}
