/*
- LOGGER FUNCTION
- REQUEST ID FUNCTION
- INITIALIZE FILES FUNCTION
- REQUEST CLIENT
*/
package helpers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

// ---------------------- LOGGER FUNCTION ---------------------- \\
func FormatDate(t time.Time) string {
	return t.Format("03:04:05 PM - 01/02/2006")
}

var colorCodes = map[string]func(a ...any) string{
	"info":    color.New(color.FgBlue).SprintFunc(),
	"verbose": color.New(color.FgCyan).SprintFunc(),
	"warn":    color.New(color.FgYellow).SprintFunc(),
	"error":   color.New(color.FgRed).SprintFunc(),
	"http":    color.New(color.FgMagenta).SprintFunc(),
	"silly":   color.New(color.FgGreen).SprintFunc(),
}

func (l *ColorizedLogger) log(level, message string) {
	timestamp := FormatDate(time.Now())
	colorFunc, exists := colorCodes[level]
	if !exists {
		colorFunc = color.New(color.Reset).SprintFunc()
	}

	var logMessage string
	if l.useColor {
		logMessage = fmt.Sprintf("%s: %s\n", colorFunc(timestamp), colorFunc(message))
	} else {
		logMessage = fmt.Sprintf("[%s]: %s\n", timestamp, message)
	}

	os.Stdout.WriteString(logMessage)
}

func NewColorizedLogger(useColor bool) *ColorizedLogger {
	return &ColorizedLogger{useColor: useColor}
}

func (l *ColorizedLogger) Info(message string)    { l.log("info", message) }
func (l *ColorizedLogger) Verbose(message string) { l.log("verbose", message) }
func (l *ColorizedLogger) Warn(message string)    { l.log("warn", message) }
func (l *ColorizedLogger) HTTP(message string)    { l.log("http", message) }
func (l *ColorizedLogger) Silly(message string)   { l.log("silly", message) }
func (l *ColorizedLogger) Error(message string)   { l.log("error", message) }

// ---------------------- REQUEST ID FUNCTION ---------------------- \\
// NewRequestID returns a short id that ties together every log line of one
// command invocation.
func NewRequestID() string {
	return uuid.NewString()[:8]
}

// ---------------------- INITIALIZE FILES FUNCTION ---------------------- \\
func createSettingsJSON(path string) {
	settings := map[string]string{
		"webhookUrl": "",
	}
	data, _ := json.MarshalIndent(settings, "", "  ")
	os.WriteFile(path, data, 0644)
}

func InitFileSystem(logger *ColorizedLogger) {
	logger.Info("Initializing Netflix Codes Engine")
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Error("Failed To Get Users Home Directory: " + err.Error())
		os.Exit(1)
	}

	baseDir := filepath.Join(home, "Netflix Codes Bot")
	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		err = os.Mkdir(baseDir, 0755)
		if err != nil {
			logger.Error("Failed To Create Netflix Codes Bot Directory: " + err.Error())
			os.Exit(1)
		}
	}

	settingsPath := filepath.Join(baseDir, "settings.json")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		createSettingsJSON(settingsPath)
	}
}

// ---------------------- REQUEST CLIENT ---------------------- \\
func CreateTLSClient(timeoutSeconds int) (tls_client.HttpClient, error) {
	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(timeoutSeconds),
		tls_client.WithRandomTLSExtensionOrder(),
		tls_client.WithClientProfile(profiles.Chrome_133),
	}

	client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, err
	}
	return client, nil
}
