package notification

import (
	"errors"
	"strings"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{
			name:        "successful notification",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     nil,
			expectError: false,
		},
		{
			name:        "notification error",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     errors.New("notification failed"),
			expectError: true,
		},
		{
			name:        "empty message",
			title:       "Title",
			message:     "",
			mockErr:     nil,
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.title {
				t.Errorf("title = %q, want %q", mock.calls[0].title, tt.title)
			}
			if mock.calls[0].message != tt.message {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.message)
			}
		})
	}
}

func TestUnreadReply(t *testing.T) {
	tests := []struct {
		name        string
		preview     string
		wantMessage func(string) bool
	}{
		{
			name:    "short preview passes through",
			preview: "We open at 8am.",
			wantMessage: func(msg string) bool {
				return msg == "We open at 8am."
			},
		},
		{
			name:    "long preview is truncated",
			preview: strings.Repeat("a", 200),
			wantMessage: func(msg string) bool {
				return len(msg) == 80 && strings.HasSuffix(msg, "...")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := UnreadReply("Testco", tt.preview); err != nil {
				t.Fatalf("UnreadReply returned error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != "Testco" {
				t.Errorf("title = %q, want %q", mock.calls[0].title, "Testco")
			}
			if !tt.wantMessage(mock.calls[0].message) {
				t.Errorf("message = %q failed expectation", mock.calls[0].message)
			}
		})
	}
}
