// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/parleyhq/parley/internal/logger"
)

// notifyFunc is the function used to deliver notifications. Tests replace
// it via SetNotifier.
type notifyFunc func(title, message string, icon any) error

var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the notification delivery function. For tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the default beeep-backed delivery.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Log("Notification: Sending notification - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := notifier(title, message, "")
	if err != nil {
		logger.Log("Notification: Failed to send notification: %v", err)
	}
	return err
}

// UnreadReply sends a notification that the bot replied while the widget is
// hidden, mirroring the in-widget unread badge.
func UnreadReply(businessName, preview string) error {
	const maxPreview = 80
	if len(preview) > maxPreview {
		preview = preview[:maxPreview-3] + "..."
	}
	return Send(businessName, preview)
}
