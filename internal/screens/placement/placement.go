package placement

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/codegenio/codegenio/internal/catalog"
	scoring "github.com/codegenio/codegenio/internal/placement"
	"github.com/codegenio/codegenio/internal/screen"
	"github.com/codegenio/codegenio/internal/state"
	"github.com/codegenio/codegenio/internal/ui/components"
	"github.com/codegenio/codegenio/internal/ui/layout"
	"github.com/codegenio/codegenio/internal/ui/theme"
)

// TestScreen runs the placement test: one multiple-choice question at
// a time, then a level recommendation.
type TestScreen struct {
	machine *state.Machine

	index   int
	choice  components.MultiChoice
	answers map[string]int
	done    bool
	score   int
	goLevel components.Button
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)

// New creates a TestScreen positioned at the first question.
func New(m *state.Machine) *TestScreen {
	s := &TestScreen{
		machine: m,
		answers: make(map[string]int, len(catalog.PlacementQuestions)),
	}
	s.choice = questionChoice(0)
	return s
}

func questionChoice(index int) components.MultiChoice {
	q := catalog.PlacementQuestions[index]
	return components.NewMultiChoice(q.Prompt, q.Options)
}

func (s *TestScreen) Init() tea.Cmd {
	return nil
}

func (s *TestScreen) Title() string {
	return "Prueba de Nivel"
}

func (s *TestScreen) KeyHints() []layout.KeyHint {
	if s.done {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ir a mi nivel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Elegir"},
		{Key: "Enter", Description: "Responder"},
		{Key: "Esc", Description: "Abandonar"},
	}
}

func (s *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if s.done {
		var cmd tea.Cmd
		s.goLevel, cmd = s.goLevel.Update(msg)
		return s, cmd
	}

	if isKey && kmsg.String() == "esc" {
		s.machine.NavigateHome()
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if s.choice.Submitted {
		q := catalog.PlacementQuestions[s.index]
		s.answers[q.ID] = s.choice.ChosenIndex

		if s.index+1 < len(catalog.PlacementQuestions) {
			s.index++
			s.choice = questionChoice(s.index)
		} else {
			s.score = scoring.Score(s.answers)
			s.done = true
			s.goLevel = components.NewButton("Ir a mi nivel", true, func() tea.Cmd {
				s.machine.CompleteTest(s.score)
				return nil
			})
		}
	}

	return s, cmd
}

func (s *TestScreen) View(width, height int) string {
	var sections []string

	if s.done {
		lvl := catalog.LevelByID(scoring.Recommend(s.score))
		sections = append(sections,
			theme.Title.Render("¡Prueba completada!"),
			"",
			theme.Body.Render(fmt.Sprintf("Respondiste bien %d de %d preguntas.", s.score, len(catalog.PlacementQuestions))),
			"",
			theme.Correct.Render("Tu nivel recomendado: "+lvl.Title),
			theme.Hint.Render(lvl.Description),
			"",
			s.goLevel.View(),
		)
	} else {
		sections = append(sections,
			theme.Title.Render("Prueba de Nivel"),
			theme.Subtitle.Render(fmt.Sprintf("Pregunta %d de %d", s.index+1, len(catalog.PlacementQuestions))),
			"",
			s.choice.View(),
		)

		bar := components.NewProgressBar(
			"",
			float64(s.index)/float64(len(catalog.PlacementQuestions)),
			false,
			40,
		)
		sections = append(sections, "", bar.View())
	}

	content := strings.Join(sections, "\n")
	return layout.Center(content, width, height)
}
