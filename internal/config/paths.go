package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the lastcommit home directory
const EnvHome = "LASTCOMMIT_HOME"

// GetHome returns LASTCOMMIT_HOME or ~/.lastcommit default
func GetHome() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".lastcommit"
		}
		return filepath.Join(homeDir, ".lastcommit")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $LASTCOMMIT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetHostKeyPath returns $LASTCOMMIT_HOME/ssh/id_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetHome(), "ssh", "id_ed25519")
}

// GetAuthorizedKeysPath returns ~/.ssh/authorized_keys
func GetAuthorizedKeysPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".ssh", "authorized_keys")
	}
	return filepath.Join(homeDir, ".ssh", "authorized_keys")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
