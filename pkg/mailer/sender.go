package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/mailblocks/pkg/markup"
)

// Sender delivers one message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound email with its compiled action markup.
type Message struct {
	SendTo   string          `json:"send_to"`
	Subject  string          `json:"subject"`
	BodyHTML string          `json:"body_html"`
	Markup   []markup.Object `json:"markup,omitempty"`
	Tag      string          `json:"tag,omitempty"`
}

// emailRegex is intentionally permissive; the mail provider performs the
// authoritative validation on submit.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks the message is deliverable: a syntactically valid
// recipient, a subject, and a non-empty HTML body.
func (m Message) Validate() error {
	if strings.TrimSpace(m.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidMessage)
	}
	if !emailRegex.MatchString(m.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidMessage)
	}
	return nil
}

// BodyWithMarkup returns the HTML body with every markup object embedded as
// an application/ld+json script tag. Mail clients read the tags from the
// document head, so the scripts are inserted before </head> when the body
// has one and prepended to the document otherwise. A message without markup
// returns the body unchanged.
func (m Message) BodyWithMarkup() (string, error) {
	if len(m.Markup) == 0 {
		return m.BodyHTML, nil
	}

	var scripts strings.Builder
	for _, obj := range m.Markup {
		data, err := json.Marshal(obj)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMarkupEmbedding, err)
		}
		scripts.WriteString(`<script type="application/ld+json">`)
		scripts.Write(data)
		scripts.WriteString("</script>\n")
	}

	if idx := strings.Index(strings.ToLower(m.BodyHTML), "</head>"); idx >= 0 {
		return m.BodyHTML[:idx] + scripts.String() + m.BodyHTML[idx:], nil
	}
	return scripts.String() + m.BodyHTML, nil
}
