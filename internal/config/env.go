package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the APP_, STORAGE_ and SEARCH_ variables plus CONFIG into a
// fresh [StructuredConfig]. Unset variables leave zero values so that the
// merge keeps lower-priority sources.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
