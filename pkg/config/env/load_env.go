package env

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file.
// It uses the ENV_PATH environment variable to determine the path to the .env file,
// falling back to defaultPath. A missing file is an error only when required is set.
// Variables already present in the environment are not overridden.
func LoadDotEnv(defaultPath string, required bool) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err == nil {
		slog.Debug("Loaded environment file", "path", envPath)
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) && !required {
		slog.Debug("Skipping .env ...", "path", envPath)
		return nil
	}

	slog.Error("Failed to load environment variables", "path", envPath, "error", err)
	return err
}
