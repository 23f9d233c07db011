package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types (durations accepted as "10m"-style strings).
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
		OTPTTL        Duration `json:"otp_ttl"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp,omitempty"`

	OAuth struct {
		GoogleClientID     string `json:"google_client_id"`
		GoogleClientSecret string `json:"google_client_secret"`
		CallbackURL        string `json:"callback_url"`
		ClientURL          string `json:"client_url"`
	} `json:"oauth,omitempty"`

	RateLimit struct {
		AuthLimit  int      `json:"auth_limit"`
		AuthWindow Duration `json:"auth_window"`
		OTPLimit   int      `json:"otp_limit"`
		OTPWindow  Duration `json:"otp_window"`
	} `json:"rate_limit,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
			BcryptCost:    jsonCfg.Auth.BcryptCost,
			OTPTTL:        time.Duration(jsonCfg.Auth.OTPTTL),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		SMTP: SMTP{
			Host:     jsonCfg.SMTP.Host,
			Port:     jsonCfg.SMTP.Port,
			Username: jsonCfg.SMTP.Username,
			Password: jsonCfg.SMTP.Password,
			From:     jsonCfg.SMTP.From,
		},
		OAuth: OAuth{
			GoogleClientID:     jsonCfg.OAuth.GoogleClientID,
			GoogleClientSecret: jsonCfg.OAuth.GoogleClientSecret,
			CallbackURL:        jsonCfg.OAuth.CallbackURL,
			ClientURL:          jsonCfg.OAuth.ClientURL,
		},
		RateLimit: RateLimit{
			AuthLimit:  jsonCfg.RateLimit.AuthLimit,
			AuthWindow: time.Duration(jsonCfg.RateLimit.AuthWindow),
			OTPLimit:   jsonCfg.RateLimit.OTPLimit,
			OTPWindow:  time.Duration(jsonCfg.RateLimit.OTPWindow),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from both JSON numbers
// (nanoseconds) and "1h30m"-style strings.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}
