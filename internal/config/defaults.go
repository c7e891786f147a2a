package config

import "time"

const (
	defaultTokenIssuer      = "team-lock"
	defaultTokenDuration    = 24 * time.Hour
	defaultLogLevel         = "debug"
	defaultLogFile          = "team-lock.log"
	defaultMinKDFIterations = 10000
	defaultHTTPAddress      = "localhost:8080"
	defaultGRPCAddress      = "localhost:9090"
	defaultRequestTimeout   = 30 * time.Second
	defaultServerURL        = "http://localhost:8080"
	defaultSweepInterval    = 5 * time.Minute
)

// defaults returns the lowest-priority configuration layer. Secrets and the
// database location have no defaults.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			LogLevel:         defaultLogLevel,
			LogFile:          defaultLogFile,
			MinKDFIterations: defaultMinKDFIterations,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			GRPCAddress:    defaultGRPCAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultServerURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			ThrottleSweepInterval: defaultSweepInterval,
		},
	}
}
