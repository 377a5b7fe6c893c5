package catalog

import "testing"

func TestLevelsShape(t *testing.T) {
	if len(Levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(Levels))
	}

	wantOrder := []string{LevelInicial, LevelIntermedio, LevelAvanzado}
	for i, want := range wantOrder {
		if Levels[i].ID != want {
			t.Errorf("level %d = %q, want %q", i, Levels[i].ID, want)
		}
		if len(Levels[i].Lessons) != 7 {
			t.Errorf("level %q has %d lessons, want 7", Levels[i].ID, len(Levels[i].Lessons))
		}
	}

	if TotalLessons() != 21 {
		t.Errorf("TotalLessons() = %d, want 21", TotalLessons())
	}
}

func TestLessonIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, lvl := range Levels {
		for _, l := range lvl.Lessons {
			if l.ID == "" {
				t.Errorf("lesson %q in %q has no id", l.Title, lvl.ID)
			}
			if seen[l.ID] {
				t.Errorf("duplicate lesson id %q", l.ID)
			}
			seen[l.ID] = true
			if l.Title == "" || l.Content == "" {
				t.Errorf("lesson %q is missing title or content", l.ID)
			}
		}
	}
}

func TestLevelByID(t *testing.T) {
	if lvl := LevelByID(LevelIntermedio); lvl == nil || lvl.ID != LevelIntermedio {
		t.Errorf("LevelByID(%q) = %v", LevelIntermedio, lvl)
	}
	if lvl := LevelByID("experto"); lvl != nil {
		t.Errorf("expected nil for unknown level, got %v", lvl)
	}
}

func TestLessonByID(t *testing.T) {
	l, lvl := LessonByID("int-3")
	if l == nil || lvl == nil {
		t.Fatal("expected lesson and level for int-3")
	}
	if lvl.ID != LevelIntermedio {
		t.Errorf("int-3 resolved to level %q", lvl.ID)
	}

	l, lvl = LessonByID("nope")
	if l != nil || lvl != nil {
		t.Error("unknown lesson id must resolve to nil")
	}
}

func TestNextLesson(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"ini-1", "ini-2"},
		{"ini-7", "int-1"}, // crosses the level boundary
		{"int-7", "ava-1"},
		{"ava-7", ""}, // final lesson of the course
		{"nope", ""},
	}

	for _, tt := range tests {
		got := NextLesson(tt.id)
		switch {
		case tt.want == "" && got != nil:
			t.Errorf("NextLesson(%q) = %q, want nil", tt.id, got.ID)
		case tt.want != "" && (got == nil || got.ID != tt.want):
			t.Errorf("NextLesson(%q) = %v, want %q", tt.id, got, tt.want)
		}
	}
}

func TestIsFinalCourseLesson(t *testing.T) {
	if !IsFinalCourseLesson("ava-7") {
		t.Error("ava-7 is the final course lesson")
	}
	if IsFinalCourseLesson("ini-7") {
		t.Error("ini-7 only ends its level, not the course")
	}
}

func TestPlacementQuestionsWellFormed(t *testing.T) {
	if len(PlacementQuestions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(PlacementQuestions))
	}

	seen := make(map[string]bool)
	for _, q := range PlacementQuestions {
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if len(q.Options) < 2 {
			t.Errorf("question %q has %d options", q.ID, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			t.Errorf("question %q has out-of-range correct index %d", q.ID, q.CorrectIndex)
		}
	}
}

func TestPlanTiers(t *testing.T) {
	tests := []struct {
		tier     PlanTier
		valid    bool
		multiple bool
	}{
		{PlanIndividual, true, false},
		{PlanFamiliar, true, true},
		{PlanInstitucion, true, true},
		{PlanTier("Gratis"), false, false},
	}

	for _, tt := range tests {
		if got := tt.tier.Valid(); got != tt.valid {
			t.Errorf("%q.Valid() = %v, want %v", tt.tier, got, tt.valid)
		}
		if got := tt.tier.AllowsMultipleProfiles(); got != tt.multiple {
			t.Errorf("%q.AllowsMultipleProfiles() = %v, want %v", tt.tier, got, tt.multiple)
		}
	}

	if len(Plans) != 3 {
		t.Errorf("expected 3 plans, got %d", len(Plans))
	}
}
