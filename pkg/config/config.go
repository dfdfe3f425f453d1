package config

import (
	"encoding/json"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	APIKey        string
	GeminiBaseURL string
	GeminiModel   string
	SecretsFile   string
}

// Load reads environment variables, optionally from a .env file if present.
// The API key is resolved from GOOGLE_API_KEY first, then from a local
// secrets file as a fallback for setups without env access.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		APIKey:        os.Getenv("GOOGLE_API_KEY"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		SecretsFile:   getEnv("SECRETS_FILE", "secrets.json"),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = keyFromSecretsFile(cfg.SecretsFile)
	}
	return cfg
}

// keyFromSecretsFile reads {"google_api_key": "..."} from path. Any read
// or parse failure yields an empty key; main decides whether that is fatal.
func keyFromSecretsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var secrets struct {
		GoogleAPIKey string `json:"google_api_key"`
	}
	if err := json.Unmarshal(data, &secrets); err != nil {
		return ""
	}
	return secrets.GoogleAPIKey
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
