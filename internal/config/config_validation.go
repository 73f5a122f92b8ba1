// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Storage.History.Key) == "" || cfg.Storage.History.Limit <= 0 {
		return ErrInvalidHistoryConfigs
	}

	if cfg.Search.SubmitLatency < 0 || cfg.Search.ProfileLatency < 0 {
		return ErrInvalidSearchConfigs
	}

	return nil
}
