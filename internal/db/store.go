package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides read-only access to a transcript database.
type Store struct {
	db *sql.DB
}

// Open opens the database in read-only mode with WAL.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LatestSession returns the most recent session regardless of status, or nil
// when the database has none.
func (s *Store) LatestSession() (*Session, error) {
	row := s.db.QueryRow(`
		SELECT id, locale, startedAt, endedAt, title, status, createdAt
		FROM sessions
		ORDER BY startedAt DESC
		LIMIT 1
	`)

	var sess Session
	var startedAt, createdAt float64
	var endedAt sql.NullFloat64
	var title sql.NullString

	if err := row.Scan(&sess.ID, &sess.Locale, &startedAt, &endedAt,
		&title, &sess.Status, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	sess.StartedAt = timeFromUnix(startedAt)
	sess.CreatedAt = timeFromUnix(createdAt)
	if endedAt.Valid {
		t := timeFromUnix(endedAt.Float64)
		sess.EndedAt = &t
	}
	if title.Valid {
		sess.Title = title.String
	}

	return &sess, nil
}

// SegmentsForSession returns a session's transcript in sequence order.
func (s *Store) SegmentsForSession(sessionID string) ([]Segment, error) {
	rows, err := s.db.Query(`
		SELECT id, sessionId, text, startedAt, endedAt, confidence, sequenceNumber, source
		FROM segments
		WHERE sessionId = ?
		ORDER BY sequenceNumber ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query segments: %w", err)
	}
	defer rows.Close()

	var segments []Segment
	for rows.Next() {
		var seg Segment
		var startedAt, endedAt float64
		var confidence sql.NullFloat64
		if err := rows.Scan(&seg.ID, &seg.SessionID, &seg.Text, &startedAt, &endedAt,
			&confidence, &seg.SequenceNumber, &seg.Source); err != nil {
			return nil, fmt.Errorf("scan segment: %w", err)
		}
		seg.StartedAt = timeFromUnix(startedAt)
		seg.EndedAt = timeFromUnix(endedAt)
		if confidence.Valid {
			c := confidence.Float64
			seg.Confidence = &c
		}
		segments = append(segments, seg)
	}
	return segments, rows.Err()
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}
