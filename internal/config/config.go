package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in dir or its parent.
// Variables already set in the process environment keep their value. It
// returns the path that was loaded, or "" when no file exists.
func LoadEnv(dir string) (string, error) {
	for _, candidate := range []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, "..", ".env"),
	} {
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", err
		}
		if err := godotenv.Load(candidate); err != nil {
			return "", err
		}
		return candidate, nil
	}
	return "", nil
}
