package mailer

import (
	"html/template"
	"strings"
)

// ReminderEmail is the data rendered into the branded reminder template.
// ConfirmURL is empty when no confirmation link was requested.
type ReminderEmail struct {
	RecipientName string
	EventName     string
	EventDate     string
	Location      string
	Message       string
	ConfirmURL    string
}

var reminderTmpl = template.Must(template.New("reminder").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #1e293b; color: white; padding: 20px; text-align: center;">
    <h1 style="margin: 0;">Platform One</h1>
  </div>
  <div style="padding: 30px; background-color: #f9fafb;">
    <p style="font-size: 16px; color: #374151;">Hello {{.RecipientName}},</p>
    <div style="background-color: white; border-radius: 8px; padding: 20px; margin: 20px 0; border: 1px solid #e5e7eb;">
      <h2 style="color: #1e293b; margin-top: 0;">{{.EventName}}</h2>
      <p style="color: #6b7280; margin: 5px 0;"><strong>Date:</strong> {{.EventDate}}</p>
      <p style="color: #6b7280; margin: 5px 0;"><strong>Location:</strong> {{.Location}}</p>
    </div>
    <div style="white-space: pre-wrap; color: #374151; line-height: 1.6;">{{.Message}}</div>
    {{if .ConfirmURL}}
    <div style="margin-top: 30px; text-align: center;">
      <p style="color: #374151; margin-bottom: 15px; font-weight: bold;">Please confirm your attendance:</p>
      <a href="{{.ConfirmURL}}"
         style="display: inline-block; background-color: #1e293b; color: white; padding: 14px 28px; text-decoration: none; border-radius: 8px; font-weight: bold; margin: 5px;">
        Confirm Attendance
      </a>
    </div>
    {{end}}
  </div>
  <div style="background-color: #e5e7eb; padding: 15px; text-align: center; color: #6b7280; font-size: 12px;">
    <p style="margin: 0;">© 2026 Platform One. All rights reserved.</p>
  </div>
</div>
`))

// RenderReminderHTML renders the reminder email body for one recipient.
func RenderReminderHTML(data ReminderEmail) (string, error) {
	var b strings.Builder
	if err := reminderTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
