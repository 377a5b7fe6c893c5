package placement

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]int
		want    int
	}{
		{
			name:    "all correct",
			answers: map[string]int{"q1": 1, "q2": 2, "q3": 2, "q4": 2, "q5": 0},
			want:    5,
		},
		{
			name:    "all wrong",
			answers: map[string]int{"q1": 0, "q2": 0, "q3": 0, "q4": 0, "q5": 1},
			want:    0,
		},
		{
			name:    "partial",
			answers: map[string]int{"q1": 1, "q2": 2, "q3": 0, "q4": 0, "q5": 3},
			want:    2,
		},
		{
			name:    "missing answers count as incorrect",
			answers: map[string]int{"q1": 1},
			want:    1,
		},
		{
			name:    "out of range answers count as incorrect",
			answers: map[string]int{"q1": 99, "q2": -1, "q3": 2},
			want:    1,
		},
		{
			name:    "unknown question ids are ignored",
			answers: map[string]int{"qX": 1, "q1": 1},
			want:    1,
		},
		{
			name:    "empty",
			answers: map[string]int{},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.answers); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "inicial"},
		{1, "inicial"},
		{2, "intermedio"},
		{3, "intermedio"},
		{4, "avanzado"},
		{5, "avanzado"},
	}

	for _, tt := range tests {
		if got := Recommend(tt.score); got != tt.want {
			t.Errorf("Recommend(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
