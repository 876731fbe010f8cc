package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/encuestapp/survey-api/internal/api"
	"github.com/encuestapp/survey-api/internal/services"
)

// timeLayout is fixed-width so the text column sorts chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore persists survey responses in a single SQLite table. Answers
// are stored as a JSON text column, mirroring the submitted shape.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func NewStore(db *sql.DB) (api.Store, error) {
	return NewSQLiteStore(db)
}

func (s *SQLiteStore) InsertResponse(r *services.SurveyResponse) (string, error) {
	answers, err := json.Marshal(r.Answers)
	if err != nil {
		return "", fmt.Errorf("encode answers: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO responses (id, answers, submitted_at, ip_address, user_agent) VALUES (?, ?, ?, ?, ?)`,
		r.ID, string(answers), r.SubmittedAt.UTC().Format(timeLayout),
		toNullString(r.IPAddress), toNullString(r.UserAgent),
	)
	if err != nil {
		return "", fmt.Errorf("insert response: %w", err)
	}
	return r.ID, nil
}

func (s *SQLiteStore) ListResponses() ([]*services.SurveyResponse, error) {
	rows, err := s.db.Query(
		`SELECT id, answers, submitted_at, ip_address, user_agent FROM responses ORDER BY submitted_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	defer rows.Close()

	out := []*services.SurveyResponse{}
	for rows.Next() {
		var (
			r         services.SurveyResponse
			answers   string
			submitted string
			ip, agent sql.NullString
		)
		if err := rows.Scan(&r.ID, &answers, &submitted, &ip, &agent); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		if err := json.Unmarshal([]byte(answers), &r.Answers); err != nil {
			// A corrupt row must not take the whole dashboard down.
			log.Error().Err(err).Str("id", r.ID).Msg("sqlite store: decode answers")
			r.Answers = services.AnswerSet{}
		}
		if ts, err := time.Parse(timeLayout, submitted); err == nil {
			r.SubmittedAt = ts
		}
		r.IPAddress = ip.String
		r.UserAgent = agent.String
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) CountResponses() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM responses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count responses: %w", err)
	}
	return n, nil
}

func toNullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}
