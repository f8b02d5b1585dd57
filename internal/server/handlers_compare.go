package server

import (
	"net/http"
	"sort"

	"github.com/google/uuid"

	"github.com/hassan/resume-analyzer/internal/db"
	"github.com/hassan/resume-analyzer/internal/types"
)

// ComparisonResponse pairs two analyses with their keyword and skill
// set differences.
type ComparisonResponse struct {
	A           AnalysisResponse `json:"a"`
	B           AnalysisResponse `json:"b"`
	Differences Differences      `json:"differences"`
}

// Differences describes how two analyses diverge. BetterResume is 1 when the
// first scores higher, 2 when the second does, 0 on a tie. The unique/common
// lists are sorted for stable output.
type Differences struct {
	ScoreDiff       int      `json:"score_diff"`
	BetterResume    int      `json:"better_resume"`
	UniqueKeywordsA []string `json:"unique_keywords_1"`
	UniqueKeywordsB []string `json:"unique_keywords_2"`
	CommonKeywords  []string `json:"common_keywords"`
	UniqueSkillsA   []string `json:"unique_skills_1"`
	UniqueSkillsB   []string `json:"unique_skills_2"`
	CommonSkills    []string `json:"common_skills"`
}

// handleCompare returns two stored analyses side by side with their
// score gap and keyword/skill set differences.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	req := types.CompareRequest{
		A: r.URL.Query().Get("a"),
		B: r.URL.Query().Get("b"),
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	first, ok := s.lookupByUID(w, r, req.A)
	if !ok {
		return
	}
	second, ok := s.lookupByUID(w, r, req.B)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, ComparisonResponse{
		A:           analysisResponse(first),
		B:           analysisResponse(second),
		Differences: compareAnalyses(first, second),
	})
}

func compareAnalyses(a, b *db.Analysis) Differences {
	better := 0
	if a.Score > b.Score {
		better = 1
	} else if b.Score > a.Score {
		better = 2
	}

	uniqueKeywordsA, uniqueKeywordsB, commonKeywords :=
		splitSets(a.MatchedKeywords, b.MatchedKeywords)
	uniqueSkillsA, uniqueSkillsB, commonSkills :=
		splitSets(a.MatchedSkills, b.MatchedSkills)

	return Differences{
		ScoreDiff:       a.Score - b.Score,
		BetterResume:    better,
		UniqueKeywordsA: uniqueKeywordsA,
		UniqueKeywordsB: uniqueKeywordsB,
		CommonKeywords:  commonKeywords,
		UniqueSkillsA:   uniqueSkillsA,
		UniqueSkillsB:   uniqueSkillsB,
		CommonSkills:    commonSkills,
	}
}

// splitSets partitions two lists into sorted only-in-a, only-in-b, and
// intersection slices.
func splitSets(a, b []string) (onlyA, onlyB, common []string) {
	inA := make(map[string]bool, len(a))
	for _, v := range a {
		inA[v] = true
	}
	inB := make(map[string]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}

	onlyA, onlyB, common = []string{}, []string{}, []string{}
	for v := range inA {
		if inB[v] {
			common = append(common, v)
		} else {
			onlyA = append(onlyA, v)
		}
	}
	for v := range inB {
		if !inA[v] {
			onlyB = append(onlyB, v)
		}
	}

	sort.Strings(onlyA)
	sort.Strings(onlyB)
	sort.Strings(common)
	return onlyA, onlyB, common
}

func (s *Server) lookupByUID(w http.ResponseWriter, r *http.Request, raw string) (*db.Analysis, bool) {
	uid, err := uuid.Parse(raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis UID: "+raw)
		return nil, false
	}

	a, err := s.store.GetAnalysisByUID(r.Context(), uid)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load analysis")
		return nil, false
	}
	if a == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found: "+raw)
		return nil, false
	}
	return a, true
}
