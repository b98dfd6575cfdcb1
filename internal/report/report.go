// Package report assembles the completion payload of a finished session and
// can export it as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mkravets/interview-trainer/internal/feedback"
	"github.com/mkravets/interview-trainer/internal/interview"
)

// Report is the read-only snapshot returned to the caller when a session
// completes: the aggregated summary, the ordered per-answer feedback, and
// the raw responses.
type Report struct {
	SessionID   string               `json:"session_id"`
	Role        interview.Role       `json:"role"`
	CompletedAt time.Time            `json:"completed_at"`
	Summary     feedback.Summary     `json:"summary"`
	Feedback    []feedback.Feedback  `json:"feedback"`
	Responses   []interview.Response `json:"responses"`
}

// Build scores every response in the session and aggregates the results.
// The snapshot is computed fresh from current state on every call.
func Build(s *interview.Session) *Report {
	responses := s.Responses()

	all := make([]feedback.Feedback, 0, len(responses))
	for _, response := range responses {
		question := s.QuestionByID(response.QuestionID)
		if question == nil {
			continue
		}
		all = append(all, feedback.ScoreAnswer(response, *question))
	}

	return &Report{
		SessionID:   s.ID,
		Role:        s.Role(),
		CompletedAt: time.Now().UTC(),
		Summary:     feedback.Aggregate(s.Role(), all),
		Feedback:    all,
		Responses:   responses,
	}
}

// DumpToTmpFile writes the report as indented JSON to a temp file and
// returns the filename.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", fmt.Sprintf("interview_%s_*.json", r.SessionID))
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
