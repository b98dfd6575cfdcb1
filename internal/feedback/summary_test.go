package feedback

import (
	"strings"
	"testing"

	"github.com/mkravets/interview-trainer/internal/interview"
)

func intPtr(n int) *int { return &n }

func TestAggregateAverages(t *testing.T) {
	all := []Feedback{
		{QuestionID: "q1", CommunicationScore: 6, OverallScore: 6, Strengths: []string{"s1"}, Suggestions: []string{"r1"}},
		{QuestionID: "q2", CommunicationScore: 7, TechnicalScore: intPtr(9), OverallScore: 8, Strengths: []string{"s1"}, Suggestions: []string{"r1"}},
		{QuestionID: "q3", CommunicationScore: 4, OverallScore: 4, Improvements: []string{"i1"}, Suggestions: []string{"r2"}},
	}

	summary := Aggregate(interview.RoleSales, all)

	// (6+7+4)/3 = 5.666... -> 5.7
	if summary.AverageCommunication != 5.7 {
		t.Fatalf("expected communication average 5.7, got %v", summary.AverageCommunication)
	}
	// (6+8+4)/3 = 6.0
	if summary.AverageOverall != 6.0 {
		t.Fatalf("expected overall average 6.0, got %v", summary.AverageOverall)
	}
	// Only q2 has a technical score.
	if summary.AverageTechnical == nil || *summary.AverageTechnical != 9.0 {
		t.Fatalf("expected technical average 9.0, got %v", summary.AverageTechnical)
	}
}

func TestAggregateNoTechnicalScores(t *testing.T) {
	all := []Feedback{
		{QuestionID: "q1", CommunicationScore: 5, OverallScore: 5},
	}

	summary := Aggregate(interview.RoleRetail, all)
	if summary.AverageTechnical != nil {
		t.Fatalf("expected no technical average, got %v", *summary.AverageTechnical)
	}
}

func TestAggregateFrequencyRanking(t *testing.T) {
	all := []Feedback{
		{Strengths: []string{"clear", "detailed"}, Improvements: []string{"examples"}, Suggestions: []string{"star", "practice"}},
		{Strengths: []string{"clear"}, Improvements: []string{"examples", "depth"}, Suggestions: []string{"star"}},
		{Strengths: []string{"clear", "concise"}, Improvements: []string{"depth"}, Suggestions: []string{"practice", "star"}},
		{Strengths: []string{"detailed"}, Improvements: []string{"brevity"}, Suggestions: []string{"focus"}},
	}

	summary := Aggregate(interview.RoleSales, all)

	wantStrengths := []string{"clear", "detailed", "concise"}
	for i, want := range wantStrengths {
		if summary.KeyStrengths[i] != want {
			t.Fatalf("strength %d: expected %q, got %q", i, want, summary.KeyStrengths[i])
		}
	}

	// examples and depth both occur twice; examples was seen first, so the
	// stable sort keeps it ahead.
	wantImprovements := []string{"examples", "depth", "brevity"}
	for i, want := range wantImprovements {
		if summary.KeyImprovements[i] != want {
			t.Fatalf("improvement %d: expected %q, got %q", i, want, summary.KeyImprovements[i])
		}
	}

	wantRecommendations := []string{"star", "practice", "focus"}
	if len(summary.Recommendations) != len(wantRecommendations) {
		t.Fatalf("expected %d recommendations, got %v", len(wantRecommendations), summary.Recommendations)
	}
	for i, want := range wantRecommendations {
		if summary.Recommendations[i] != want {
			t.Fatalf("recommendation %d: expected %q, got %q", i, want, summary.Recommendations[i])
		}
	}
}

func TestAggregateTopListsAreBounded(t *testing.T) {
	var all []Feedback
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		all = append(all, Feedback{
			CommunicationScore: 5,
			OverallScore:       5,
			Strengths:          []string{s},
			Improvements:       []string{s},
			Suggestions:        []string{s},
		})
	}

	summary := Aggregate(interview.RoleSales, all)

	if len(summary.KeyStrengths) != 3 {
		t.Fatalf("expected top-3 strengths, got %d", len(summary.KeyStrengths))
	}
	if len(summary.KeyImprovements) != 3 {
		t.Fatalf("expected top-3 improvements, got %d", len(summary.KeyImprovements))
	}
	if len(summary.Recommendations) != 5 {
		t.Fatalf("expected top-5 recommendations, got %d", len(summary.Recommendations))
	}
}

func TestAggregateNarrative(t *testing.T) {
	tests := []struct {
		name    string
		overall int
		expect  string
	}{
		{"excellent at 8", 8, "Excellent performance"},
		{"good at 6", 6, "Good performance"},
		{"needs work below 6", 4, "significant room for improvement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all := []Feedback{{CommunicationScore: tt.overall, OverallScore: tt.overall}}
			summary := Aggregate(interview.RoleEngineer, all)

			if !strings.Contains(summary.Text, tt.expect) {
				t.Fatalf("expected narrative containing %q, got %q", tt.expect, summary.Text)
			}
			if !strings.HasPrefix(summary.Text, "You completed the engineer interview practice session.") {
				t.Fatalf("unexpected narrative prefix: %q", summary.Text)
			}
		})
	}
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(interview.RoleSales, nil)

	if summary.AverageOverall != 0 || summary.AverageCommunication != 0 {
		t.Fatalf("expected zero averages for an empty session")
	}
	if summary.AverageTechnical != nil {
		t.Fatalf("expected no technical average for an empty session")
	}
	if len(summary.KeyStrengths) != 0 || len(summary.Recommendations) != 0 {
		t.Fatalf("expected empty top lists")
	}
	if summary.Text == "" {
		t.Fatalf("expected a narrative even for an empty session")
	}
}
