package cli

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that provide flag defaults.
const (
	EnvDataDir   = "BIKESHARE_DATA_DIR"
	EnvConfig    = "BIKESHARE_CONFIG"
	EnvLogLevel  = "BIKESHARE_LOG_LEVEL"
	EnvLogFormat = "BIKESHARE_LOG_FORMAT"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Environ returns the process environment layered over the values of
// dotenvPath. Variables set in the process win. A missing file is ignored.
func Environ(dotenvPath string) (map[string]string, error) {
	env, err := godotenv.Read(dotenvPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		env = make(map[string]string)
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env, nil
}
