package settings

import (
	"encoding/json"
	"os"

	backend "netflixbot/src/backend"
	helpers "netflixbot/src/middleware/helpers"
)

func UpdateWebhookURL(logger *helpers.ColorizedLogger, webhook string) error {
	path, err := backend.SettingsPath()
	if err != nil {
		logger.Error("Failed To Get Home Directory")
		return err
	}

	var settings map[string]string
	fileData, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed To Read Settings File")
		return err
	}

	err = json.Unmarshal(fileData, &settings)
	if err != nil {
		logger.Error("Failed To Unmarshal Settings File")
		return err
	}

	settings["webhookUrl"] = webhook
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		logger.Error("Failed To Update Settings File")
		return err
	}

	return nil
}
