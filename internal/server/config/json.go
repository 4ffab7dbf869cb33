package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/flagx"
	"github.com/dmitrijs2005/skillswap/internal/timex"
)

// JsonConfig is the on-disk shape of a config file. Durations accept both
// strings such as "15m" and integer nanoseconds. Absent fields keep the
// value they had before the file was read.
type JsonConfig struct {
	EndpointAddrGRPC        string         `json:"endpoint_addr_grpc"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	IdentityBackend         string         `json:"identity_backend"`
	SQLiteDSN               string         `json:"sqlite_dsn"`
	GeminiAPIKey            string         `json:"gemini_api_key"`
	GeminiBaseURL           string         `json:"gemini_base_url"`
	GeminiModel             string         `json:"gemini_model"`
	ChatTemperature         *float64       `json:"chat_temperature"`
	LessonTemperature       *float64       `json:"lesson_temperature"`
	S3RootUser              string         `json:"s3_root_user"`
	S3RootPassword          string         `json:"s3_root_password"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
	PresignValidityDuration timex.Duration `json:"presign_validity_duration"`
}

// parseJson overlays the JSON file given with -c or -config, if any.
// An unreadable or invalid file panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.SessionValidityDuration, c.SessionValidityDuration)
	setString(&config.IdentityBackend, c.IdentityBackend)
	setString(&config.SQLiteDSN, c.SQLiteDSN)
	setString(&config.GeminiAPIKey, c.GeminiAPIKey)
	setString(&config.GeminiBaseURL, c.GeminiBaseURL)
	setString(&config.GeminiModel, c.GeminiModel)
	if c.ChatTemperature != nil {
		config.ChatTemperature = *c.ChatTemperature
	}
	if c.LessonTemperature != nil {
		config.LessonTemperature = *c.LessonTemperature
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setDuration(&config.PresignValidityDuration, c.PresignValidityDuration)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
