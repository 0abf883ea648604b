// Package config provides configuration for the application from
// command-line flags, environment variables and an optional JSON
// config file. Precedence: flags < config file < environment.
package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"server_address"`

	// ResultHostname is the base URL used for result links.
	ResultHostname string `json:"base_url"`

	// FilePath is the path to the storage file for persistent data.
	FilePath string `json:"file_storage_path"`

	// DatabaseDSN holds the database connection string.
	DatabaseDSN string `json:"database_dsn"`

	// EnablePprof indicates whether to enable pprof for profiling.
	EnablePprof bool `json:"enable_pprof"`

	// EnableHTTPS indicates whether to serve over TLS.
	EnableHTTPS bool `json:"enable_https"`
}

var options = &Options{}

func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.ResultHostname, "b", "http://localhost:8080", "result base url")
	flag.StringVar(&options.FilePath, "f", "", "path to storage file")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse parses the command-line flags, an optional config file and
// environment variables into an Options value.
func Parse() *Options {
	flag.Parse()

	if path := os.Getenv("CONFIG"); path != "" {
		loadFile(path)
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		options.ResultHostname = baseURL
	}

	if storagePath := os.Getenv("FILE_STORAGE_PATH"); storagePath != "" {
		options.FilePath = storagePath
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpsMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			httpsMode = false
		}
		options.EnableHTTPS = httpsMode
	}

	return options
}

func loadFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}
	// Flag defaults survive a partial config file.
	_ = json.Unmarshal(content, options)
}
