package imap

import (
	"bytes"
	"io"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

var subjectDecoder = mime.WordDecoder{
	CharsetReader: func(enc string, input io.Reader) (io.Reader, error) {
		r, err := charset.Reader(enc, input)
		if err != nil {
			// Unknown charset: pass the bytes through, lossy UTF-8
			// cleanup happens in DecodeSubject.
			return input, nil
		}
		return r, nil
	},
}

// DecodeSubject decodes a raw MIME subject header. Each encoded word is
// decoded with its declared charset; words with an unknown or broken
// charset degrade to lossy UTF-8. Undecorated ASCII passes through
// unchanged, and a header that cannot be decoded at all is returned as-is.
func DecodeSubject(raw string) string {
	decoded, err := subjectDecoder.DecodeHeader(raw)
	if err != nil {
		return raw
	}
	return lossyUTF8String(decoded)
}

// ExtractPlainText pulls the plain-text body out of a raw message. For
// multipart messages the first inline text/plain part wins; a singly-typed
// message yields its sole payload whatever its content type. The bool is
// false when no decodable text exists, which is not a fault.
func ExtractPlainText(raw []byte) (string, bool) {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return "", false
	}
	defer mr.Close()

	mediaType, _, _ := mr.Header.ContentType()
	multipart := strings.HasPrefix(mediaType, "multipart/")

	var sole string
	var seen bool
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		header, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		content, err := io.ReadAll(part.Body)
		if err != nil {
			continue
		}

		partType, _, _ := header.ContentType()
		if strings.HasPrefix(partType, "text/plain") {
			return lossyUTF8(content), true
		}
		if !seen {
			sole = lossyUTF8(content)
			seen = true
		}
	}

	if !multipart && seen {
		return sole, true
	}
	return "", false
}

func lossyUTF8(b []byte) string {
	return lossyUTF8String(string(b))
}

func lossyUTF8String(s string) string {
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
