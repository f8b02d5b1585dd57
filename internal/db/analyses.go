package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound indicates the requested analysis does not exist.
var ErrNotFound = errors.New("analysis not found")

// analysisColumns is the column list shared by every analysis query.
const analysisColumns = `id, uid, filename, COALESCE(job_title, ''), job_description,
	COALESCE(resume_text, ''), score, keyword_score, skills_score, format_score,
	matched_keywords, missing_keywords, matched_skills, missing_skills,
	suggestions, ats_issues, created_at`

// SaveAnalysis persists a new analysis record and returns its generated UID.
// Resume text is truncated before storage.
func (db *DB) SaveAnalysis(ctx context.Context, a *Analysis) (uuid.UUID, error) {
	if a.UID == uuid.Nil {
		a.UID = uuid.New()
	}
	resumeText := truncateRunes(a.ResumeText, maxStoredResumeChars)

	lists, err := marshalLists(a)
	if err != nil {
		return uuid.Nil, err
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO resume_analyses
		 (uid, filename, job_title, job_description, resume_text,
		  score, keyword_score, skills_score, format_score,
		  matched_keywords, missing_keywords, matched_skills, missing_skills,
		  suggestions, ats_issues)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING id`,
		a.UID, a.Filename, a.JobTitle, a.JobDescription, resumeText,
		a.Score, a.KeywordScore, a.SkillsScore, a.FormatScore,
		lists[0], lists[1], lists[2], lists[3], lists[4], lists[5],
	).Scan(&a.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return a.UID, nil
}

// GetAnalysisByUID retrieves one analysis by its public UID.
// Returns (nil, nil) when no record exists.
func (db *DB) GetAnalysisByUID(ctx context.Context, uid uuid.UUID) (*Analysis, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+analysisColumns+` FROM resume_analyses WHERE uid = $1`, uid)
	return scanAnalysis(row)
}

// GetAnalysisByID retrieves one analysis by its numeric ID.
// Returns (nil, nil) when no record exists.
func (db *DB) GetAnalysisByID(ctx context.Context, id int) (*Analysis, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+analysisColumns+` FROM resume_analyses WHERE id = $1`, id)
	return scanAnalysis(row)
}

// ListAnalyses retrieves recent analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+analysisColumns+` FROM resume_analyses
		 ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *a)
	}
	return analyses, rows.Err()
}

// DeleteAnalysis removes an analysis by numeric ID.
func (db *DB) DeleteAnalysis(ctx context.Context, id int) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resume_analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetStats aggregates score bands over all stored analyses.
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(ROUND(AVG(score)), 0),
		        COUNT(*) FILTER (WHERE score >= 80),
		        COUNT(*) FILTER (WHERE score >= 50 AND score < 80),
		        COUNT(*) FILTER (WHERE score < 50)
		 FROM resume_analyses`).
		Scan(&stats.Total, &stats.AvgScore, &stats.HighScore, &stats.MidScore, &stats.LowScore)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return &stats, nil
}

// RecentScores returns the n most recent analyses as chart entries.
func (db *DB) RecentScores(ctx context.Context, n int) ([]RecentScore, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT filename, score, to_char(created_at, 'Mon DD')
		 FROM resume_analyses ORDER BY created_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent scores: %w", err)
	}
	defer rows.Close()

	var recent []RecentScore
	for rows.Next() {
		var r RecentScore
		if err := rows.Scan(&r.Filename, &r.Score, &r.Date); err != nil {
			return nil, fmt.Errorf("failed to scan recent score: %w", err)
		}
		r.Filename = truncateRunes(r.Filename, 20)
		recent = append(recent, r)
	}
	return recent, rows.Err()
}

// truncateRunes shortens s to at most n runes without splitting a
// multi-byte character.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// marshalLists serializes the six list fields for JSONB storage, in column
// order.
func marshalLists(a *Analysis) ([][]byte, error) {
	fields := [][]string{
		a.MatchedKeywords, a.MissingKeywords,
		a.MatchedSkills, a.MissingSkills,
		a.Suggestions, a.ATSIssues,
	}
	out := make([][]byte, len(fields))
	for i, list := range fields {
		if list == nil {
			list = []string{}
		}
		data, err := json.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal analysis lists: %w", err)
		}
		out[i] = data
	}
	return out, nil
}

// scanAnalysis reads one analysis row, decoding the JSONB list columns.
// Returns (nil, nil) for pgx.ErrNoRows.
func scanAnalysis(row pgx.Row) (*Analysis, error) {
	var a Analysis
	var lists [6][]byte
	err := row.Scan(&a.ID, &a.UID, &a.Filename, &a.JobTitle, &a.JobDescription,
		&a.ResumeText, &a.Score, &a.KeywordScore, &a.SkillsScore, &a.FormatScore,
		&lists[0], &lists[1], &lists[2], &lists[3], &lists[4], &lists[5],
		&a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan analysis: %w", err)
	}

	targets := []*[]string{
		&a.MatchedKeywords, &a.MissingKeywords,
		&a.MatchedSkills, &a.MissingSkills,
		&a.Suggestions, &a.ATSIssues,
	}
	for i, raw := range lists {
		*targets[i] = []string{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, targets[i]); err != nil {
				return nil, fmt.Errorf("failed to decode analysis lists: %w", err)
			}
		}
	}
	return &a, nil
}
