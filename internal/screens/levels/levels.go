package levels

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codegenio/codegenio/internal/screen"
	"github.com/codegenio/codegenio/internal/state"
	"github.com/codegenio/codegenio/internal/ui/components"
	"github.com/codegenio/codegenio/internal/ui/layout"
	"github.com/codegenio/codegenio/internal/ui/theme"
)

// LessonsScreen lists the lessons of the selected level.
type LessonsScreen struct {
	machine  *state.Machine
	selected int
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.KeyHintProvider = (*LessonsScreen)(nil)

// New creates a new LessonsScreen for the machine's selected level.
func New(m *state.Machine) *LessonsScreen {
	return &LessonsScreen{machine: m}
}

func (s *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonsScreen) Title() string {
	if lvl := s.machine.SelectedLevel(); lvl != nil {
		return "Nivel " + lvl.Title
	}
	return "Lecciones"
}

func (s *LessonsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir lección"},
		{Key: "Esc", Description: "Inicio"},
	}
}

func (s *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	lvl := s.machine.SelectedLevel()
	if lvl == nil {
		s.machine.NavigateHome()
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		s.machine.NavigateHome()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(lvl.Lessons)-1 {
			s.selected++
		}
	case "enter":
		s.machine.SelectLesson(lvl.Lessons[s.selected].ID)
	}
	return s, nil
}

func (s *LessonsScreen) View(width, height int) string {
	lvl := s.machine.SelectedLevel()
	if lvl == nil {
		return ""
	}

	var sections []string
	sections = append(sections,
		theme.Title.Render("Nivel "+lvl.Title),
		theme.Subtitle.Render(lvl.Description),
		"",
	)

	profile := s.machine.ActiveProfile()
	completed := 0
	if profile != nil {
		for _, l := range lvl.Lessons {
			if profile.HasCompleted(l.ID) {
				completed++
			}
		}
	}

	bar := components.NewProgressBar(
		fmt.Sprintf("Completadas %d de %d", completed, len(lvl.Lessons)),
		float64(completed)/float64(len(lvl.Lessons)),
		true,
		52,
	)
	sections = append(sections, bar.View(), "")

	for i, l := range lvl.Lessons {
		mark := "○"
		markStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if profile != nil && profile.HasCompleted(l.ID) {
			mark = "✓"
			markStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		line := fmt.Sprintf("%s  %s", markStyle.Render(mark), l.Title)
		meta := theme.Hint.Render("  " + l.EstimatedTime)

		if i == s.selected {
			sections = append(sections, theme.Selected.Render("▸ "+line)+meta)
			sections = append(sections, theme.Hint.Render("    "+l.Description))
		} else {
			sections = append(sections, theme.Unselected.Render("  "+line)+meta)
		}
	}

	content := strings.Join(sections, "\n")
	return layout.Center(content, width, height)
}
