package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	diagnose "netflixbot/src/frontend/diagnose"
	bot "netflixbot/src/middleware/bot"
	helpers "netflixbot/src/middleware/helpers"
)

func main() {
	logger := helpers.NewColorizedLogger(true)

	runDiagnose := flag.Bool("diagnose", false, "Run the interactive mailbox diagnostics menu instead of the bot")
	flag.Parse()

	email := os.Getenv("EMAIL")
	password := os.Getenv("PASSWORD")
	if email == "" || password == "" {
		logger.Error("Email Credentials Not Found. Please Set The EMAIL And PASSWORD Environment Variables.")
		os.Exit(1)
	}

	mailbox := helpers.Mailbox{
		Server:   helpers.ImapServer,
		Email:    email,
		Password: password,
	}

	helpers.InitFileSystem(logger)

	if *runDiagnose {
		diagnose.DiagnoseMenu(logger, mailbox)
		return
	}

	token := os.Getenv("TOKEN")
	if token == "" {
		logger.Error("Discord Bot Token Not Found. Please Set The TOKEN Environment Variable.")
		os.Exit(1)
	}
	logger.Info("All Environment Variables Validated")

	b, err := bot.New(token, logger, bot.NewRateLimiter(), mailbox)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed To Create Bot: %v", err))
		os.Exit(1)
	}

	logger.Info("Starting Netflix Codes Bot")
	if err := b.Open(); err != nil {
		logger.Error(fmt.Sprintf("Failed To Start Bot: %v", err))
		os.Exit(1)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	fmt.Println("Exiting Netflix Codes Bot 👋")
	if err := b.Close(); err != nil {
		logger.Error(fmt.Sprintf("Failed To Close Discord Session: %v", err))
	}
}
