// Package secret reads the AO3 password from the environment.
//
// The password is never part of the configuration file and is never logged.
// A .env file in the working directory may seed the environment; variables
// already set in the process take precedence.
package secret

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// PasswordEnv is the environment variable holding the AO3 password.
const PasswordEnv = "AO3_PASSWORD"

// ErrMissing is returned when the password is not set.
var ErrMissing = errors.New("secret is not set")

// LoadDotenv loads variables from the given files, or ./.env when none are
// given. Missing files are ignored.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Source provides the password at the moment it is needed.
type Source interface {
	Password() (string, error)
}

// Env reads the password from an environment variable.
type Env string

// Password returns the value of the variable, or ErrMissing when it is unset
// or empty.
func (e Env) Password() (string, error) {
	value, ok := os.LookupEnv(string(e))
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissing, string(e))
	}
	return value, nil
}
