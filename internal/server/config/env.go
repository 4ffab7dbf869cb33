package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/skillswap/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	defaultEnvFile  = ".env"
	envGeminiAPIKey = "GEMINI_API_KEY"
)

// parseEnv loads the dotenv file named by -env (default ".env") into the
// process environment, without overriding variables that are already set,
// and then reads GEMINI_API_KEY. A missing file is not an error; a file
// that exists but cannot be parsed panics.
func parseEnv(config *Config) {
	path := flagx.EnvFileFlags(defaultEnvFile)

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := os.Getenv(envGeminiAPIKey); v != "" {
		config.GeminiAPIKey = v
	}
}
