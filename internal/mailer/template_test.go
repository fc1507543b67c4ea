package mailer

import (
	"strings"
	"testing"
)

func TestRenderReminderHTML(t *testing.T) {
	html, err := RenderReminderHTML(ReminderEmail{
		RecipientName: "Ada",
		EventName:     "Community Park Cleanup",
		EventDate:     "Saturday, September 12, 2026 at 10:00 AM",
		Location:      "Riverside Park",
		Message:       "Bring gloves & water.",
		ConfirmURL:    "http://localhost:3000/confirm/abc-123",
	})
	if err != nil {
		t.Fatalf("RenderReminderHTML() error = %v", err)
	}

	for _, want := range []string{
		"Hello Ada,",
		"Community Park Cleanup",
		"Saturday, September 12, 2026 at 10:00 AM",
		"Riverside Park",
		"http://localhost:3000/confirm/abc-123",
		"Confirm Attendance",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}

	// Free text is escaped, not injected raw.
	if !strings.Contains(html, "Bring gloves &amp; water.") {
		t.Error("message body was not HTML-escaped")
	}
}

func TestRenderReminderHTML_NoConfirmBlock(t *testing.T) {
	html, err := RenderReminderHTML(ReminderEmail{
		RecipientName: "Ben",
		EventName:     "Annual Gala",
		EventDate:     "Friday, October 2, 2026 at 7:00 PM",
		Location:      "Main Hall",
		Message:       "Dress code: formal.",
	})
	if err != nil {
		t.Fatalf("RenderReminderHTML() error = %v", err)
	}

	if strings.Contains(html, "Confirm Attendance") {
		t.Error("confirmation block rendered without a confirmation link")
	}
}
