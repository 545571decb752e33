package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads dir/envs/.env.<GO_ENV>, falling back to dir/envs/.env.
// GO_ENV defaults to dev. Variables already set in the process are kept.
// It returns the file that was loaded.
func LoadEnvFiles(dir string) (string, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	var errs []error
	for _, name := range []string{".env." + env, ".env"} {
		file := filepath.Join(dir, "envs", name)
		err := godotenv.Load(file)
		if err == nil {
			return file, nil
		}
		errs = append(errs, err)
	}
	return "", errors.Join(errs...)
}
