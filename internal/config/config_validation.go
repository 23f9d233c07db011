// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Fallbacks applied to optional settings that were not provided by any
// configuration source. Secrets and addresses have no fallback: they are
// checked by validate instead.
const (
	defaultTokenDuration = 24 * time.Hour
	defaultOTPTTL        = 10 * time.Minute
	defaultBcryptCost    = 12

	defaultAuthLimit  = 5
	defaultAuthWindow = 15 * time.Minute
	defaultOTPLimit   = 1
	defaultOTPWindow  = time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Auth.OTPTTL == 0 {
		cfg.Auth.OTPTTL = defaultOTPTTL
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}

	if cfg.RateLimit.AuthLimit == 0 {
		cfg.RateLimit.AuthLimit = defaultAuthLimit
	}
	if cfg.RateLimit.AuthWindow == 0 {
		cfg.RateLimit.AuthWindow = defaultAuthWindow
	}
	if cfg.RateLimit.OTPLimit == 0 {
		cfg.RateLimit.OTPLimit = defaultOTPLimit
	}
	if cfg.RateLimit.OTPWindow == 0 {
		cfg.RateLimit.OTPWindow = defaultOTPWindow
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidAuthConfigs
	}

	return nil
}
