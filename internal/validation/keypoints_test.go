package validation

import "testing"

func TestExtractKeyPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "single sentence is identity",
			input:  "I led the migration.",
			expect: "I led the migration.",
		},
		{
			name:   "three sentences are identity",
			input:  "First point. Second point. Third point.",
			expect: "First point. Second point. Third point.",
		},
		{
			name:   "five sentences are condensed to three",
			input:  "One. Two. Three. Four. Five.",
			expect: "One.  Two.  Three.",
		},
		{
			name:   "mixed terminators count as sentence breaks",
			input:  "Really! Are you sure? Yes. Definitely. Indeed.",
			expect: "Really.  Are you sure.  Yes.",
		},
		{
			name:   "empty input is identity",
			input:  "",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractKeyPoints(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
