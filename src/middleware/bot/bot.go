package bot

import (
	"fmt"
	"strings"

	backend "netflixbot/src/backend"
	helpers "netflixbot/src/middleware/helpers"
	discord "netflixbot/src/middleware/helpers/discord"
	netflix "netflixbot/src/middleware/modules/netflix"

	"github.com/bwmarrin/discordgo"
)

const commandPrefix = "!"

const (
	rateLimitReply   = "⚠️ Rate limit exceeded. Please wait before trying again."
	genericFailReply = "❌ An error occurred while processing your request."
)

// Bot wires the Discord command surface to the code-retrieval core. Each
// command invocation gets its own request id and its own mailbox session;
// nothing but the rate limiter is shared between concurrent handlers.
type Bot struct {
	session *discordgo.Session
	logger  *helpers.ColorizedLogger
	limiter *RateLimiter
	mailbox helpers.Mailbox
}

func New(token string, logger *helpers.ColorizedLogger, limiter *RateLimiter, mailbox helpers.Mailbox) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	b := &Bot{session: session, logger: logger, limiter: limiter, mailbox: mailbox}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessage)
	session.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentMessageContent
	return b, nil
}

func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord gateway: %w", err)
	}
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info(fmt.Sprintf("Logged In As %s, Serving %d Guilds", r.User.Username, len(r.Guilds)))
}

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, commandPrefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, commandPrefix))
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "hello":
		b.handleHello(s, m)
	case "signin":
		b.handleSignin(s, m)
	case "verify":
		b.handleVerify(s, m)
	}
}

func (b *Bot) reply(s *discordgo.Session, m *discordgo.MessageCreate, text string) {
	if _, err := s.ChannelMessageSend(m.ChannelID, text); err != nil {
		b.logger.Error(fmt.Sprintf("Failed To Send Message To Channel %s: %v", m.ChannelID, err))
	}
}

func (b *Bot) handleHello(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.reply(s, m, "Hello! How can I assist you today?")
}

func (b *Bot) handleSignin(s *discordgo.Session, m *discordgo.MessageCreate) {
	reqID := helpers.NewRequestID()
	b.logger.Info(fmt.Sprintf("Request %s: Sign-In Command Triggered By User %s (%s) In Channel %s",
		reqID, m.Author.ID, m.Author.Username, m.ChannelID))

	if !b.limiter.Allow(m.Author.ID) {
		b.logger.Warn(fmt.Sprintf("Request %s: User %s Hit Rate Limit", reqID, m.Author.ID))
		b.reply(s, m, rateLimitReply)
		return
	}

	b.reply(s, m, "🔍 Searching for Netflix sign-in code email...")

	result, err := netflix.GetSignInCode(b.logger, reqID, b.mailbox)
	if err != nil {
		b.logger.Error(fmt.Sprintf("Request %s: Failed To Retrieve Sign-In Code: %v", reqID, err))
		b.reply(s, m, genericFailReply)
		return
	}
	if result == nil {
		b.reply(s, m, "❌ Failed to get the sign-in code. Please ensure you've requested a sign-in code from Netflix first.")
		return
	}

	if result.Verdict.Expired {
		b.reply(s, m, fmt.Sprintf("⚠️ Sign-in code: **%s** (EXPIRED)\n❌ %s", result.Code, result.Verdict.Message))
	} else {
		b.reply(s, m, fmt.Sprintf("✅ Sign-in code: **%s**\n⏰ %s", result.Code, result.Verdict.Message))
	}

	b.notify(reqID, "Sign-In Code Retrieved", result.Code, m.Author.Username)
}

func (b *Bot) handleVerify(s *discordgo.Session, m *discordgo.MessageCreate) {
	reqID := helpers.NewRequestID()
	b.logger.Info(fmt.Sprintf("Request %s: Verify Command Triggered By User %s (%s) In Channel %s",
		reqID, m.Author.ID, m.Author.Username, m.ChannelID))

	if !b.limiter.Allow(m.Author.ID) {
		b.logger.Warn(fmt.Sprintf("Request %s: User %s Hit Rate Limit", reqID, m.Author.ID))
		b.reply(s, m, rateLimitReply)
		return
	}

	b.reply(s, m, "🔍 Searching for Netflix verification email...")

	code, err := netflix.GetChallengeCode(b.logger, reqID, b.mailbox)
	if err != nil {
		b.logger.Error(fmt.Sprintf("Request %s: Failed To Retrieve Challenge Code: %v", reqID, err))
		b.reply(s, m, genericFailReply)
		return
	}
	if code == "" {
		b.reply(s, m, "❌ Failed to get the challenge code. Please ensure you've requested a PIN from Netflix first.")
		return
	}

	b.reply(s, m, fmt.Sprintf("✅ Challenge code: **%s**", code))
	b.notify(reqID, "Challenge Code Retrieved", code, m.Author.Username)
}

// notify fires the operations webhook when one is configured. Webhook
// problems never reach the user.
func (b *Bot) notify(reqID, event, code, user string) {
	settings, err := backend.LoadSettings()
	if err != nil || settings.WebhookUrl == "" {
		return
	}
	if err := discord.SendRetrievalWebhook(settings.WebhookUrl, event, code, user); err != nil {
		b.logger.Error(fmt.Sprintf("Request %s: Failed To Send Webhook: %v", reqID, err))
	}
}
