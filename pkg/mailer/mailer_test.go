package mailer_test

import (
	"strings"
	"testing"

	"smart-task-api/pkg/mailer"
)

func TestBuildMessage(t *testing.T) {
	msg := string(mailer.BuildMessage(
		"tasks@example.com",
		"user@example.com",
		"Reminder: Buy milk",
		"Task 'Buy milk' is due at 2025-01-02 17:00.",
	))

	headers, body, found := strings.Cut(msg, "\r\n\r\n")
	if !found {
		t.Fatalf("message has no header/body separator: %q", msg)
	}
	for _, want := range []string{
		"From: tasks@example.com",
		"To: user@example.com",
		"Subject: Reminder: Buy milk",
	} {
		if !strings.Contains(headers, want) {
			t.Errorf("headers missing %q:\n%s", want, headers)
		}
	}
	if !strings.Contains(body, "Buy milk") {
		t.Errorf("body missing task description: %q", body)
	}
}
