package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that supply CLI flag defaults.
const (
	EnvDBPath     = "CHROMA_DB"
	EnvSeed       = "CHROMA_SEED"
	EnvConfigPath = "CHROMA_CONFIG"
	EnvDifficulty = "CHROMA_DIFFICULTY"
)

// LoadEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win over the file.
// A missing file is not an error.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return err
		}
	}
	return nil
}

// EnvString returns the value of key, or fallback when unset or empty.
func EnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// EnvInt64 returns key parsed as an integer, or fallback when unset or invalid.
func EnvInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
