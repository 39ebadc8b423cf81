package helpers

type ColorizedLogger struct {
	useColor bool
}

// --------------------- MAILBOX STRUCT --------------------- \\
type Mailbox struct {
	Server   string
	Email    string
	Password string
}
