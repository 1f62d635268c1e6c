// Package console holds the call-handling console's view-model: chat history,
// canned assistant replies, dialog visibility and in-progress form drafts.
package console

import "time"

// Speaker identifies who said a transcript line.
type Speaker string

const (
	SpeakerCustomer Speaker = "Customer"
	SpeakerRep      Speaker = "Rep"
)

// TranscriptMessage is one line of the call transcript.
type TranscriptMessage struct {
	Speaker   Speaker
	Message   string
	Timestamp string
}

// ChatType distinguishes representative input from assistant replies.
type ChatType string

const (
	ChatUser ChatType = "user"
	ChatAI   ChatType = "ai"
)

// ChatMessage is an entry in the assistant chat panel.
type ChatMessage struct {
	Type      ChatType
	Message   string
	Timestamp string
}

// CallStatus is the outcome recorded for a past call.
type CallStatus string

const (
	StatusResolved  CallStatus = "Resolved"
	StatusFollowUp  CallStatus = "Follow-up"
	StatusEscalated CallStatus = "Escalated"
)

// RecentCall is a previous call from the same customer.
type RecentCall struct {
	ID           string
	CustomerName string
	Date         string
	Duration     string
	Status       CallStatus
	Issue        string
}

// CallSummary is the wrap-up record shown when a call is completed.
type CallSummary struct {
	CustomerName       string
	Rating             int // 0-5
	PrimaryReason      string
	SecondaryReasons   []string
	Summary            string
	CasesCreated       []string
	CustomerActivities []string
	Improvements       []string
}

// Profile is the customer shown in the info bar.
type Profile struct {
	Name        string
	State       string
	Phone       string
	HearingAid  string
	CallElapsed time.Duration // elapsed time when the console opened
}

// Notification is a success toast emitted by a completed action.
type Notification struct {
	ID    string
	Title string
	Body  string
	At    time.Time
}

// Reply is a scheduled assistant reply. The caller fires Deliver(ID) once
// Delay has passed.
type Reply struct {
	ID    string
	Delay time.Duration
}
