package app

import "time"

// ReplyDueMsg fires when a scheduled assistant reply should land.
type ReplyDueMsg struct {
	ID string
}

// ClockTickMsg advances the call duration display.
type ClockTickMsg struct {
	Time time.Time
}

// ClearNotificationMsg hides the toast for notification ID if it is still shown.
type ClearNotificationMsg struct {
	ID string
}
