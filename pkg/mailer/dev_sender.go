package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development. It writes each message
// to a directory as an HTML file (markup embedded, openable in a browser)
// and a JSON metadata file instead of sending it anywhere.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that saves messages to dir.
// The directory is created on first send if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

// messageMetadata is the message data saved to JSON, excluding HTML content.
type messageMetadata struct {
	Timestamp   string   `json:"timestamp"`
	SendTo      string   `json:"send_to"`
	Subject     string   `json:"subject"`
	Tag         string   `json:"tag,omitempty"`
	MarkupTypes []string `json:"markup_types,omitempty"`
}

// Send saves the message as an .html and a .json file in the configured
// directory, named <timestamp>_<tag-or-subject>.
func (d *DevSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	body, err := msg.BodyWithMarkup()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSend, err)
	}

	now := time.Now()
	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	baseFilename := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(identifier))

	htmlPath := filepath.Join(d.dir, baseFilename+".html")
	if err := os.WriteFile(htmlPath, []byte(body), 0644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSend, err)
	}

	metadata := messageMetadata{
		Timestamp:   now.Format(time.RFC3339),
		SendTo:      msg.SendTo,
		Subject:     msg.Subject,
		Tag:         msg.Tag,
		MarkupTypes: markupTypes(msg),
	}
	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSend, err)
	}

	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSend, err)
	}

	return nil
}

func markupTypes(msg Message) []string {
	var types []string
	for _, obj := range msg.Markup {
		if typ, ok := obj["@type"].(string); ok {
			types = append(types, typ)
		}
	}
	return types
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe lowercase filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "message"
	}
	return strings.ToLower(s)
}
