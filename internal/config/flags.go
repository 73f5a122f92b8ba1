package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-d database DSN (SQLite file path or "memory")
//	-history-key key of the search history entry
//	-history-limit maximum number of history records
//	-submit-latency simulated search round trip (e.g. "1500ms")
//	-profile-latency simulated profile lookup (e.g. "2s")
//	-log-file client log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("horizon", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var databaseDSN string
	var historyKey string
	var historyLimit int
	var submitLatency time.Duration
	var profileLatency time.Duration
	var logFile string
	var jsonConfigPath string

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&historyKey, "history-key", "", "Search history key")
	fs.IntVar(&historyLimit, "history-limit", 0, "Maximum number of history records")
	fs.DurationVar(&submitLatency, "submit-latency", 0, "Simulated search latency (e.g., 1500ms)")
	fs.DurationVar(&profileLatency, "profile-latency", 0, "Simulated profile lookup latency (e.g., 2s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			History: History{
				Key:   historyKey,
				Limit: historyLimit,
			},
		},
		Search: Search{
			SubmitLatency:  submitLatency,
			ProfileLatency: profileLatency,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
