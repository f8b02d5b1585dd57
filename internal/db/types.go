package db

import (
	"time"

	"github.com/google/uuid"
)

// maxStoredResumeChars truncates stored resume text; the full extracted text
// is only needed at analysis time.
const maxStoredResumeChars = 5000

// Analysis is a persisted analysis record. The list columns mirror the
// engine result field names so exports and reports can render them verbatim.
type Analysis struct {
	ID              int       `json:"id"`
	UID             uuid.UUID `json:"uid"`
	Filename        string    `json:"filename"`
	JobTitle        string    `json:"job_title,omitempty"`
	JobDescription  string    `json:"-"`
	ResumeText      string    `json:"-"`
	Score           int       `json:"score"`
	KeywordScore    int       `json:"keyword_score"`
	SkillsScore     int       `json:"skills_score"`
	FormatScore     int       `json:"format_score"`
	MatchedKeywords []string  `json:"matched_keywords"`
	MissingKeywords []string  `json:"missing_keywords"`
	MatchedSkills   []string  `json:"matched_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	Suggestions     []string  `json:"suggestions"`
	ATSIssues       []string  `json:"ats_issues"`
	CreatedAt       time.Time `json:"created_at"`
}

// Stats aggregates stored analyses for the dashboard.
type Stats struct {
	Total     int `json:"total"`
	AvgScore  int `json:"avg_score"`
	HighScore int `json:"high_score"` // score >= 80
	MidScore  int `json:"mid_score"`  // 50 <= score < 80
	LowScore  int `json:"low_score"`  // score < 50
}

// RecentScore is a compact entry for the dashboard's recent-analyses chart.
type RecentScore struct {
	Filename string `json:"filename"`
	Score    int    `json:"score"`
	Date     string `json:"date"`
}
