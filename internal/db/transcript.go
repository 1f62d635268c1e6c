package db

import (
	"errors"
	"fmt"

	"github.com/jwulff/careconsole/internal/console"
)

// ErrNoSession is returned when the database holds no recorded call.
var ErrNoSession = errors.New("no session in database")

// Transcript converts the latest session into console transcript lines.
// System audio is the caller; the microphone is the representative.
func (s *Store) Transcript() ([]console.TranscriptMessage, error) {
	sess, err := s.LatestSession()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoSession
	}

	segments, err := s.SegmentsForSession(sess.ID)
	if err != nil {
		return nil, err
	}

	out := make([]console.TranscriptMessage, 0, len(segments))
	for _, seg := range segments {
		speaker := console.SpeakerRep
		if seg.Source == SourceSystemAudio {
			speaker = console.SpeakerCustomer
		}
		out = append(out, console.TranscriptMessage{
			Speaker:   speaker,
			Message:   seg.Text,
			Timestamp: seg.StartedAt.Format("15:04:05"),
		})
	}
	return out, nil
}

// LoadTranscript opens path, reads the latest session's transcript and
// closes the database.
func LoadTranscript(path string) ([]console.TranscriptMessage, error) {
	store, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	lines, err := store.Transcript()
	if err != nil {
		return nil, fmt.Errorf("load transcript from %s: %w", path, err)
	}
	return lines, nil
}
