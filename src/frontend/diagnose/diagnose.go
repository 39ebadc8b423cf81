package diagnose

import (
	"fmt"

	settings "netflixbot/src/backend/settings"
	helpers "netflixbot/src/middleware/helpers"
	netflix "netflixbot/src/middleware/modules/netflix"

	"github.com/AlecAivazis/survey/v2"
)

// DiagnoseMenu offers mailbox checks that bypass Discord, for verifying
// IMAP credentials and spotting Netflix template wording changes.
func DiagnoseMenu(logger *helpers.ColorizedLogger, mailbox helpers.Mailbox) {
	for {
		options := []string{
			"Recent Email Subjects",
			"Latest Email Subject",
			"Test Code Extraction",
			"Set Webhook URL",
			"Exit",
		}

		var result string
		prompt := &survey.Select{
			Message: "Select an Option:",
			Options: options,
		}

		if err := survey.AskOne(prompt, &result); err != nil {
			logger.Error(fmt.Sprintf("Failed To Prompt Diagnose Menu: %v", err))
			return
		}

		switch result {
		case "Recent Email Subjects":
			recentSubjects(logger, mailbox, 5)
		case "Latest Email Subject":
			recentSubjects(logger, mailbox, 1)
		case "Test Code Extraction":
			testExtraction(logger)
		case "Set Webhook URL":
			setWebhook(logger)
		case "Exit":
			return
		}
	}
}

func recentSubjects(logger *helpers.ColorizedLogger, mailbox helpers.Mailbox, count int) {
	reqID := helpers.NewRequestID()
	subjects, err := netflix.RecentSubjects(logger, reqID, mailbox, count)
	if err != nil {
		logger.Error(fmt.Sprintf("Request %s: Failed To List Recent Subjects: %v", reqID, err))
		return
	}
	if len(subjects) == 0 {
		logger.Warn("No Netflix Emails Found")
		return
	}
	for i, subject := range subjects {
		logger.Info(fmt.Sprintf("%d. %s", i+1, subject))
	}
}

func testExtraction(logger *helpers.ColorizedLogger) {
	var body string
	prompt := &survey.Multiline{Message: "Paste Email Body:"}
	if err := survey.AskOne(prompt, &body); err != nil {
		logger.Error(fmt.Sprintf("Failed To Prompt For Email Body: %v", err))
		return
	}

	code, ok := netflix.ExtractCode(body)
	if !ok {
		logger.Warn("No Code Matched Any Pattern Tier")
		return
	}
	logger.Info(fmt.Sprintf("Code %s Matched Via %s Pattern", code.Value, code.Tier))
}

func setWebhook(logger *helpers.ColorizedLogger) {
	var webhook string
	prompt := &survey.Input{Message: "Webhook URL:"}
	if err := survey.AskOne(prompt, &webhook); err != nil {
		logger.Error(fmt.Sprintf("Failed To Prompt For Webhook URL: %v", err))
		return
	}

	if err := settings.UpdateWebhookURL(logger, webhook); err != nil {
		return
	}
	logger.Info("Webhook URL Updated")
}
