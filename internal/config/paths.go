package config

import (
	"os"
	"path/filepath"
)

// GetTallyHome returns TALLY_HOME or ~/.tally default
func GetTallyHome() string {
	tallyHome := os.Getenv("TALLY_HOME")
	if tallyHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".tally"
		}
		return filepath.Join(homeDir, ".tally")
	}
	return ExpandPath(tallyHome)
}

// GetDBPath returns $TALLY_HOME/tally.db
func GetDBPath() string {
	return filepath.Join(GetTallyHome(), "tally.db")
}

// GetLockPath returns $TALLY_HOME/tally.lock
func GetLockPath() string {
	return filepath.Join(GetTallyHome(), "tally.lock")
}

// GetSettingsPath returns $TALLY_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetTallyHome(), "settings.json")
}

// GetSSHDir returns $TALLY_HOME/ssh, where the server keeps its host key
func GetSSHDir() string {
	return filepath.Join(GetTallyHome(), "ssh")
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
