package helpers

var (
	ImapServer = "imap.gmail.com:993"
	SecChUa    = `"Not)A;Brand";v="8", "Chromium";v="138", "Google Chrome";v="138"`
	UserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"
)
