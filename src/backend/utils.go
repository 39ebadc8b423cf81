package backend

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// --------------- SETTINGS FUNCTIONS --------------- \\
func SettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Netflix Codes Bot", "settings.json"), nil
}

func LoadSettings() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var settings Settings
	err = json.Unmarshal(data, &settings)
	return settings, err
}
