package report

import (
	"encoding/json"
	"math/rand"
	"os"
	"testing"

	"github.com/mkravets/interview-trainer/internal/interview"
)

func completedSession(t *testing.T) *interview.Session {
	t.Helper()

	session := interview.NewSession(interview.DefaultBank(), interview.RoleEngineer,
		interview.WithMaxFollowUps(0),
		interview.WithRand(rand.New(rand.NewSource(1))),
	)

	answers := []string{
		"I have a background in distributed systems because I spent years on infrastructure teams.",
		"First I reproduced the bug. Then I bisected the releases. Finally I fixed the algorithm and added a regression test to the system.",
		"I review code with empathy and give concrete examples in comments.",
		"Caching is like a notebook where you write down answers you already computed.",
		"I read engineering blogs and follow a few open source projects closely.",
	}
	for _, answer := range answers {
		session.SubmitAnswer(answer)
	}

	if !session.Complete() {
		t.Fatalf("fixture session must be complete")
	}
	return session
}

func TestBuild(t *testing.T) {
	session := completedSession(t)

	result := Build(session)

	if result.SessionID != session.ID {
		t.Fatalf("expected session id %s, got %s", session.ID, result.SessionID)
	}
	if result.Role != interview.RoleEngineer {
		t.Fatalf("unexpected role: %s", result.Role)
	}
	if len(result.Feedback) != session.TotalQuestions() {
		t.Fatalf("expected %d feedback entries, got %d", session.TotalQuestions(), len(result.Feedback))
	}
	if len(result.Responses) != session.TotalQuestions() {
		t.Fatalf("expected %d responses, got %d", session.TotalQuestions(), len(result.Responses))
	}

	// eng-2 is the only technical question, so the summary has a technical
	// average and exactly one feedback entry carries a technical score.
	if result.Summary.AverageTechnical == nil {
		t.Fatalf("expected a technical average")
	}
	technical := 0
	for _, fb := range result.Feedback {
		if fb.TechnicalScore != nil {
			technical++
		}
	}
	if technical != 1 {
		t.Fatalf("expected exactly one technical feedback entry, got %d", technical)
	}

	if result.Summary.Text == "" {
		t.Fatalf("expected a summary narrative")
	}
}

func TestBuildIsSnapshotOfCurrentState(t *testing.T) {
	session := completedSession(t)

	first := Build(session)
	second := Build(session)

	if first.Summary.AverageOverall != second.Summary.AverageOverall {
		t.Fatalf("rebuilt report must match: %v vs %v",
			first.Summary.AverageOverall, second.Summary.AverageOverall)
	}
	if len(first.Feedback) != len(second.Feedback) {
		t.Fatalf("rebuilt report must have the same feedback count")
	}
}

func TestDumpToTmpFile(t *testing.T) {
	session := completedSession(t)
	result := Build(session)

	filename, err := result.DumpToTmpFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { os.Remove(filename) })

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("dump is not valid json: %v", err)
	}
	if decoded.SessionID != result.SessionID {
		t.Fatalf("expected session id %s, got %s", result.SessionID, decoded.SessionID)
	}
	if len(decoded.Feedback) != len(result.Feedback) {
		t.Fatalf("expected %d feedback entries, got %d", len(result.Feedback), len(decoded.Feedback))
	}
}
