package env

import (
	"os"
)

func Debug() bool {
	return os.Getenv("DEBUG") != ""
}

// Dir is the directory shape files are kept in when no flag overrides it.
func Dir() string {
	if d := os.Getenv("SHAPES_DIR"); d != "" {
		return d
	}
	return "."
}
