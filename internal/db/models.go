// Package db reads call transcripts from a steno SQLite database.
package db

import "time"

// Session is one recorded call.
type Session struct {
	ID        string
	Locale    string
	StartedAt time.Time
	EndedAt   *time.Time
	Title     string
	Status    string
	CreatedAt time.Time
}

// Segment is a finalized transcript line.
type Segment struct {
	ID             string
	SessionID      string
	Text           string
	StartedAt      time.Time
	EndedAt        time.Time
	Confidence     *float64
	SequenceNumber int
	Source         string
}

// SourceSystemAudio marks audio captured from the far end of the call.
const SourceSystemAudio = "systemAudio"
