package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

const appName = "Glass Notes"

// Notifier sends desktop notifications when enabled.
type Notifier struct {
	Enabled bool
	send    func(title, message string) error
}

func New(enabled bool) *Notifier {
	return &Notifier{Enabled: enabled, send: func(title, message string) error {
		return beeep.Notify(title, message, "")
	}}
}

func (n *Notifier) Info(title, message string) error {
	if n == nil || !n.Enabled {
		return nil
	}
	return n.send(title, message)
}

// NoteSaved announces a created or edited note.
func (n *Notifier) NoteSaved(title string, created bool) error {
	head := "Note updated"
	if created {
		head = "Note added"
	}
	return n.Info(appName, fmt.Sprintf("%s: %s", head, title))
}

func (n *Notifier) NoteDeleted(id int64) error {
	return n.Info(appName, fmt.Sprintf("Note #%d deleted", id))
}

// Reminder raises an alert regardless of Enabled; the reminder has its own
// switch.
func Reminder(today int) error {
	title, msg := FormatDailyPrompt(today)
	return beeep.Alert(title, msg, "")
}

func FormatDailyPrompt(today int) (string, string) {
	title := "Glass Notes reminder"
	if today == 0 {
		return title, "No notes yet today. Anything worth writing down?"
	}
	return title, fmt.Sprintf("You took %d notes today. Anything else to add?", today)
}
