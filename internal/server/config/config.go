// Package config handles configuration for the server component,
// including defaults, dotenv, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the SkillSwap server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - SecretKey: HMAC secret for signing session JWTs (HS256).
//   - SessionValidityDuration: session token lifetime.
//   - IdentityBackend / SQLiteDSN: "memory" or "sqlite" identity store.
//   - Gemini*: AI collaborator endpoint; no API key means replies always fall back.
//   - S3*: S3-compatible attachment storage.
type Config struct {
	EndpointAddrGRPC        string
	SecretKey               string
	SessionValidityDuration time.Duration
	IdentityBackend         string
	SQLiteDSN               string
	GeminiAPIKey            string
	GeminiBaseURL           string
	GeminiModel             string
	ChatTemperature         float64
	LessonTemperature       float64
	S3RootUser              string
	S3RootPassword          string
	S3Bucket                string
	S3Region                string
	S3BaseEndpoint          string
	PresignValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key and S3 credentials must be overridden outside dev.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 24 * time.Hour
	c.IdentityBackend = "memory"
	c.SQLiteDSN = "file:skillswap?mode=memory&cache=shared"
	c.GeminiBaseURL = "https://generativelanguage.googleapis.com"
	c.GeminiModel = "gemini-2.5-flash"
	c.ChatTemperature = 0.8
	c.LessonTemperature = 0.7
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "skillswap"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.PresignValidityDuration = 15 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then the environment
// (optionally from a dotenv file), then an optional JSON file and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
