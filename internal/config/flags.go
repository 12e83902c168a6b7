package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database path
//	-account-url account store base URL
//	-classifier-url goal classifier base URL
//	-request-timeout outbound request timeout (e.g., "15s")
//	-decay-interval decay job wake-up interval (e.g., "1h")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var accountBaseURL string
	var classifierBaseURL string
	var requestTimeout time.Duration
	var decayInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&accountBaseURL, "account-url", "", "Account store base URL")
	flag.StringVar(&classifierBaseURL, "classifier-url", "", "Goal classifier base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&decayInterval, "decay-interval", 0, "Decay job interval (e.g., 1h)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Account: Account{
			BaseURL:        accountBaseURL,
			RequestTimeout: requestTimeout,
		},
		Classifier: Classifier{
			BaseURL: classifierBaseURL,
		},
		Workers: Workers{
			DecayCheckInterval: decayInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
