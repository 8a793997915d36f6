// Package eml decodes email messages and mbox archives. Each message
// becomes one document holding its subject and text body.
package eml

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/normalisers/docutil"
	htmlnorm "github.com/custodia-labs/topica/internal/normalisers/html"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

const mimeMbox = "application/mbox"

// Metadata keys for message headers.
const (
	MetaFrom    = "from"
	MetaDate    = "date"
	MetaSubject = "subject"
	MetaMessage = "message"
)

// Normaliser handles single messages and mbox archives.
type Normaliser struct{}

// New creates a new email normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"message/rfc822", mimeMbox}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise returns one document per message. Headers other than the
// subject are kept as metadata, not text.
func (n *Normaliser) Normalise(ctx context.Context, raw *domain.RawDocument, _ driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	messages := [][]byte{raw.Content}
	if raw.MIMEType == mimeMbox {
		messages = splitMbox(raw.Content)
	}

	base := docutil.Title(raw)
	docs := make([]domain.Document, 0, len(messages))
	for i, content := range messages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		msg, err := mail.ReadMessage(bytes.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("%w: message %d: %v", domain.ErrInvalidInput, i+1, err)
		}

		subject := decodeHeader(msg.Header.Get("Subject"))
		body, err := extractBody(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i+1, err)
		}

		title := subject
		if title == "" {
			title = base
			if len(messages) > 1 {
				title = fmt.Sprintf("%s message %d", base, i+1)
			}
		}

		text := strings.TrimSpace(strings.Join([]string{subject, body}, "\n\n"))
		doc := docutil.NewDocument(raw, title, strings.ToValidUTF8(text, " "), "eml")
		doc.Metadata[MetaMessage] = i + 1
		if subject != "" {
			doc.Metadata[MetaSubject] = subject
		}
		if from := decodeHeader(msg.Header.Get("From")); from != "" {
			doc.Metadata[MetaFrom] = from
		}
		if date := msg.Header.Get("Date"); date != "" {
			doc.Metadata[MetaDate] = date
		}
		docs = append(docs, doc)
	}

	return &driven.NormaliseResult{Documents: docs}, nil
}

// splitMbox splits an mboxo/mboxrd archive on "From " separator lines and
// undoes ">From " quoting. Content before the first separator is ignored.
func splitMbox(content []byte) [][]byte {
	var (
		out [][]byte
		cur *bytes.Buffer
	)
	for _, line := range bytes.SplitAfter(content, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("From ")) {
			if cur != nil {
				out = append(out, cur.Bytes())
			}
			cur = new(bytes.Buffer)
			continue
		}
		if cur == nil {
			continue
		}
		if unquoted := bytes.TrimLeft(line, ">"); len(unquoted) < len(line) && bytes.HasPrefix(unquoted, []byte("From ")) {
			line = line[1:]
		}
		cur.Write(line)
	}
	if cur != nil {
		out = append(out, cur.Bytes())
	}
	return out
}

// decodeHeader decodes RFC 2047 encoded words, returning the header
// unchanged when it cannot be decoded.
func decodeHeader(header string) string {
	if header == "" {
		return ""
	}
	dec := new(mime.WordDecoder)
	decoded, err := dec.DecodeHeader(header)
	if err != nil {
		return header
	}
	return decoded
}

// extractBody returns the text of a message or part. multipart/alternative
// prefers text/plain; other multiparts concatenate their text parts.
func extractBody(contentType, transferEncoding string, body io.Reader) (string, error) {
	if contentType == "" {
		contentType = "text/plain"
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return extractMultipart(mediaType, params["boundary"], body)
	}

	content, err := io.ReadAll(decodeTransfer(transferEncoding, body))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", domain.ErrInvalidInput, err)
	}

	switch mediaType {
	case "text/html":
		return htmlnorm.Strip(string(content)), nil
	case "text/plain":
		return strings.TrimSpace(string(content)), nil
	default:
		// Attachments carry no text.
		return "", nil
	}
}

func extractMultipart(mediaType, boundary string, body io.Reader) (string, error) {
	if boundary == "" {
		return "", nil
	}

	var plain, html []string
	mr := multipart.NewReader(body, boundary)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: multipart: %v", domain.ErrInvalidInput, err)
		}

		partType, _, perr := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if perr != nil {
			partType = "text/plain"
		}
		text, err := extractBody(part.Header.Get("Content-Type"), part.Header.Get("Content-Transfer-Encoding"), part)
		part.Close()
		if err != nil {
			return "", err
		}
		if text == "" {
			continue
		}
		if partType == "text/html" {
			html = append(html, text)
		} else {
			plain = append(plain, text)
		}
	}

	if mediaType == "multipart/alternative" && len(plain) > 0 {
		return plain[0], nil
	}
	if len(plain) > 0 {
		return strings.Join(plain, "\n"), nil
	}
	return strings.Join(html, "\n"), nil
}

// decodeTransfer undoes base64 and quoted-printable transfer encodings.
func decodeTransfer(encoding string, r io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}
