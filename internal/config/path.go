// Package config decides where greenledger reads its configuration and
// keeps its data.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves the shell-isms users put in configured paths: a
// leading ~ becomes the home directory and $VAR references are expanded.
// When the home directory cannot be determined the ~ is left alone.
func ExpandPath(path string) string {
	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
