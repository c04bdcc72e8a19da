package mailer_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/mailer"
	"github.com/dmitrymomot/mailblocks/pkg/markup"
)

// MockSender is a mock implementation of Sender for testing.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		msg     mailer.Message
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid message",
			msg: mailer.Message{
				SendTo:   "user@example.com",
				Subject:  "Your order",
				BodyHTML: "<p>Hi</p>",
				Tag:      "order",
			},
		},
		{
			name: "valid message without tag or markup",
			msg: mailer.Message{
				SendTo:   "user@example.com",
				Subject:  "Your order",
				BodyHTML: "<p>Hi</p>",
			},
		},
		{
			name:    "empty SendTo",
			msg:     mailer.Message{Subject: "S", BodyHTML: "<p>b</p>"},
			wantErr: true,
			errMsg:  "SendTo is required",
		},
		{
			name:    "whitespace only SendTo",
			msg:     mailer.Message{SendTo: "   ", Subject: "S", BodyHTML: "<p>b</p>"},
			wantErr: true,
			errMsg:  "SendTo is required",
		},
		{
			name:    "invalid email format",
			msg:     mailer.Message{SendTo: "invalid-email", Subject: "S", BodyHTML: "<p>b</p>"},
			wantErr: true,
			errMsg:  "SendTo must be a valid email address",
		},
		{
			name:    "empty Subject",
			msg:     mailer.Message{SendTo: "user@example.com", BodyHTML: "<p>b</p>"},
			wantErr: true,
			errMsg:  "Subject is required",
		},
		{
			name:    "empty BodyHTML",
			msg:     mailer.Message{SendTo: "user@example.com", Subject: "S"},
			wantErr: true,
			errMsg:  "BodyHTML is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.msg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, mailer.ErrInvalidMessage)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMessage_BodyWithMarkup(t *testing.T) {
	t.Parallel()

	obj := markup.Object{
		"@context": "http://schema.org",
		"@type":    "EmailMessage",
	}

	t.Run("injects before closing head tag", func(t *testing.T) {
		t.Parallel()
		msg := mailer.Message{
			BodyHTML: "<html><head><title>T</title></head><body>Hi</body></html>",
			Markup:   []markup.Object{obj},
		}

		body, err := msg.BodyWithMarkup()
		require.NoError(t, err)

		scriptIdx := strings.Index(body, `<script type="application/ld+json">`)
		headIdx := strings.Index(body, "</head>")
		require.GreaterOrEqual(t, scriptIdx, 0)
		assert.Less(t, scriptIdx, headIdx, "script goes inside the head")
		assert.Contains(t, body, `"@type":"EmailMessage"`)
	})

	t.Run("uppercase head tag", func(t *testing.T) {
		t.Parallel()
		msg := mailer.Message{
			BodyHTML: "<HTML><HEAD></HEAD><BODY>Hi</BODY></HTML>",
			Markup:   []markup.Object{obj},
		}

		body, err := msg.BodyWithMarkup()
		require.NoError(t, err)
		assert.Less(t, strings.Index(body, "<script"), strings.Index(body, "</HEAD>"))
	})

	t.Run("no head tag prepends scripts", func(t *testing.T) {
		t.Parallel()
		msg := mailer.Message{
			BodyHTML: "<p>Hi</p>",
			Markup:   []markup.Object{obj},
		}

		body, err := msg.BodyWithMarkup()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(body, `<script type="application/ld+json">`))
		assert.True(t, strings.HasSuffix(body, "<p>Hi</p>"))
	})

	t.Run("one script per markup object", func(t *testing.T) {
		t.Parallel()
		msg := mailer.Message{
			BodyHTML: "<head></head>",
			Markup:   []markup.Object{obj, obj, obj},
		}

		body, err := msg.BodyWithMarkup()
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(body, `<script type="application/ld+json">`))
	})

	t.Run("no markup returns body unchanged", func(t *testing.T) {
		t.Parallel()
		msg := mailer.Message{BodyHTML: "<p>Hi</p>"}

		body, err := msg.BodyWithMarkup()
		require.NoError(t, err)
		assert.Equal(t, "<p>Hi</p>", body)
	})
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	t.Run("writes html and metadata files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		sender := mailer.NewDevSender(dir)

		err := sender.Send(context.Background(), mailer.Message{
			SendTo:   "user@example.com",
			Subject:  "Your flight",
			BodyHTML: "<html><head></head><body>Itinerary</body></html>",
			Markup: []markup.Object{{
				"@context": "http://schema.org",
				"@type":    "FlightReservation",
			}},
			Tag: "itinerary",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var htmlFile, jsonFile string
		for _, e := range entries {
			switch filepath.Ext(e.Name()) {
			case ".html":
				htmlFile = filepath.Join(dir, e.Name())
			case ".json":
				jsonFile = filepath.Join(dir, e.Name())
			}
		}
		require.NotEmpty(t, htmlFile)
		require.NotEmpty(t, jsonFile)

		html, err := os.ReadFile(htmlFile)
		require.NoError(t, err)
		assert.Contains(t, string(html), `<script type="application/ld+json">`)
		assert.Contains(t, string(html), `"@type":"FlightReservation"`)

		meta, err := os.ReadFile(jsonFile)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(meta, &decoded))
		assert.Equal(t, "user@example.com", decoded["send_to"])
		assert.Equal(t, "itinerary", decoded["tag"])
		assert.Equal(t, []any{"FlightReservation"}, decoded["markup_types"])
	})

	t.Run("rejects invalid message", func(t *testing.T) {
		t.Parallel()
		sender := mailer.NewDevSender(t.TempDir())
		err := sender.Send(context.Background(), mailer.Message{Subject: "S", BodyHTML: "<p>b</p>"})
		assert.ErrorIs(t, err, mailer.ErrInvalidMessage)
	})
}

func TestNewPostmarkSender(t *testing.T) {
	t.Parallel()

	valid := mailer.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "noreply@example.com",
		ReplyToEmail:         "support@example.com",
	}

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		sender, err := mailer.NewPostmarkSender(valid)
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("missing server token", func(t *testing.T) {
		t.Parallel()
		cfg := valid
		cfg.PostmarkServerToken = ""
		_, err := mailer.NewPostmarkSender(cfg)
		assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
	})

	t.Run("invalid sender email", func(t *testing.T) {
		t.Parallel()
		cfg := valid
		cfg.SenderEmail = "not-an-email"
		_, err := mailer.NewPostmarkSender(cfg)
		assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
	})

	t.Run("reply-to is optional", func(t *testing.T) {
		t.Parallel()
		cfg := valid
		cfg.ReplyToEmail = ""
		_, err := mailer.NewPostmarkSender(cfg)
		assert.NoError(t, err)
	})
}

func TestMockSender(t *testing.T) {
	t.Parallel()

	sender := new(MockSender)
	msg := mailer.Message{
		SendTo:   "user@example.com",
		Subject:  "S",
		BodyHTML: "<p>b</p>",
	}
	sender.On("Send", mock.Anything, msg).Return(nil)

	require.NoError(t, sender.Send(context.Background(), msg))
	sender.AssertExpectations(t)
}
