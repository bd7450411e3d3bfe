// Package store persists transcripts and computed topic data in SQLite, so
// the UI can reload results without re-running transcription.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Pluggentipsar/intervju-transkribering/internal/topics"
	"github.com/Pluggentipsar/intervju-transkribering/internal/transcript"
)

const schema = `
	CREATE TABLE IF NOT EXISTS segments (
		id INTEGER,
		job_id TEXT NOT NULL,
		segment_index INTEGER NOT NULL,
		start_time REAL NOT NULL,
		end_time REAL NOT NULL,
		text TEXT NOT NULL,
		anonymized_text TEXT,
		speaker TEXT,
		confidence REAL,
		PRIMARY KEY (job_id, segment_index)
	);

	CREATE TABLE IF NOT EXISTS topic_sections (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL,
		sensitivity TEXT NOT NULL,
		section_rank INTEGER NOT NULL,
		start_index INTEGER NOT NULL,
		end_index INTEGER NOT NULL,
		start_time REAL NOT NULL,
		end_time REAL NOT NULL,
		keywords TEXT NOT NULL,
		segment_count INTEGER NOT NULL,
		summary TEXT NOT NULL,
		created_at REAL NOT NULL,
		UNIQUE (job_id, sensitivity, section_rank)
	);

	CREATE TABLE IF NOT EXISTS word_cloud (
		job_id TEXT NOT NULL,
		word TEXT NOT NULL,
		count INTEGER NOT NULL,
		word_rank INTEGER NOT NULL,
		PRIMARY KEY (job_id, word)
	);
`

// Store wraps the SQLite database holding transcripts and computed topics.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. Use ":memory:" for
// an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSegments replaces the stored segments for a job.
func (s *Store) SaveSegments(jobID string, segments []transcript.Segment) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM segments WHERE job_id = ?`, jobID); err != nil {
		return fmt.Errorf("clear segments: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO segments (id, job_id, segment_index, start_time, end_time, text, anonymized_text, speaker, confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, seg := range segments {
		if _, err := stmt.Exec(seg.ID, jobID, seg.Index, seg.StartTime, seg.EndTime,
			seg.Text, nullString(seg.AnonymizedText), nullString(seg.Speaker), seg.Confidence); err != nil {
			return fmt.Errorf("insert segment %d: %w", seg.Index, err)
		}
	}
	return tx.Commit()
}

// SegmentsForJob returns a job's segments ordered by index.
func (s *Store) SegmentsForJob(jobID string) ([]transcript.Segment, error) {
	rows, err := s.db.Query(`
		SELECT id, segment_index, start_time, end_time, text, anonymized_text, speaker, confidence
		FROM segments
		WHERE job_id = ?
		ORDER BY segment_index ASC
	`, jobID)
	if err != nil {
		return nil, fmt.Errorf("query segments: %w", err)
	}
	defer rows.Close()

	var segments []transcript.Segment
	for rows.Next() {
		var seg transcript.Segment
		var anonymized, speaker sql.NullString
		var confidence sql.NullFloat64
		if err := rows.Scan(&seg.ID, &seg.Index, &seg.StartTime, &seg.EndTime,
			&seg.Text, &anonymized, &speaker, &confidence); err != nil {
			return nil, fmt.Errorf("scan segment: %w", err)
		}
		seg.AnonymizedText = anonymized.String
		seg.Speaker = speaker.String
		if confidence.Valid {
			c := confidence.Float64
			seg.Confidence = &c
		}
		segments = append(segments, seg)
	}
	return segments, rows.Err()
}

// SaveSections replaces the stored topic sections for a job at one
// sensitivity level.
func (s *Store) SaveSections(jobID string, sensitivity topics.Sensitivity, sections []topics.Section) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM topic_sections WHERE job_id = ? AND sensitivity = ?`,
		jobID, string(sensitivity)); err != nil {
		return fmt.Errorf("clear sections: %w", err)
	}

	now := float64(time.Now().UnixMilli()) / 1000
	for _, sec := range sections {
		_, err := tx.Exec(`
			INSERT INTO topic_sections (id, job_id, sensitivity, section_rank, start_index, end_index,
				start_time, end_time, keywords, segment_count, summary, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.NewString(), jobID, string(sensitivity), sec.ID, sec.StartIndex, sec.EndIndex,
			sec.StartTime, sec.EndTime, strings.Join(sec.Keywords, " "), sec.SegmentCount, sec.Summary, now)
		if err != nil {
			return fmt.Errorf("insert section %d: %w", sec.ID, err)
		}
	}
	return tx.Commit()
}

// SectionsForJob returns a job's stored topic sections for one sensitivity
// level, ordered by rank.
func (s *Store) SectionsForJob(jobID string, sensitivity topics.Sensitivity) ([]topics.Section, error) {
	rows, err := s.db.Query(`
		SELECT section_rank, start_index, end_index, start_time, end_time, keywords, segment_count, summary
		FROM topic_sections
		WHERE job_id = ? AND sensitivity = ?
		ORDER BY section_rank ASC
	`, jobID, string(sensitivity))
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	var sections []topics.Section
	for rows.Next() {
		var sec topics.Section
		var keywords string
		if err := rows.Scan(&sec.ID, &sec.StartIndex, &sec.EndIndex, &sec.StartTime,
			&sec.EndTime, &keywords, &sec.SegmentCount, &sec.Summary); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		if keywords != "" {
			sec.Keywords = strings.Split(keywords, " ")
		}
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

// SaveWordCloud replaces the stored word cloud for a job.
func (s *Store) SaveWordCloud(jobID string, rows []topics.WordCount) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM word_cloud WHERE job_id = ?`, jobID); err != nil {
		return fmt.Errorf("clear word cloud: %w", err)
	}
	for rank, row := range rows {
		if _, err := tx.Exec(`
			INSERT INTO word_cloud (job_id, word, count, word_rank) VALUES (?, ?, ?, ?)
		`, jobID, row.Word, row.Count, rank); err != nil {
			return fmt.Errorf("insert word %q: %w", row.Word, err)
		}
	}
	return tx.Commit()
}

// WordCloudForJob returns up to limit stored word-cloud rows in rank order.
func (s *Store) WordCloudForJob(jobID string, limit int) ([]topics.WordCount, error) {
	rows, err := s.db.Query(`
		SELECT word, count
		FROM word_cloud
		WHERE job_id = ?
		ORDER BY word_rank ASC
		LIMIT ?
	`, jobID, limit)
	if err != nil {
		return nil, fmt.Errorf("query word cloud: %w", err)
	}
	defer rows.Close()

	var cloud []topics.WordCount
	for rows.Next() {
		var row topics.WordCount
		if err := rows.Scan(&row.Word, &row.Count); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		cloud = append(cloud, row)
	}
	return cloud, rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
