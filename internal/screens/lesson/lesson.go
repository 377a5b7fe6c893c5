package lesson

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codegenio/codegenio/internal/catalog"
	"github.com/codegenio/codegenio/internal/chat"
	"github.com/codegenio/codegenio/internal/screen"
	"github.com/codegenio/codegenio/internal/state"
	"github.com/codegenio/codegenio/internal/ui/components"
	"github.com/codegenio/codegenio/internal/ui/layout"
	"github.com/codegenio/codegenio/internal/ui/theme"
)

const (
	codeStartMarker = "[CODE_START]"
	codeEndMarker   = "[CODE_END]"

	thinkingText = "CodeGenie está pensando..."
)

// chatMessage is one entry of the lesson chat transcript.
type chatMessage struct {
	fromTutor bool
	text      string
}

// chatReplyMsg carries the tutor's answer back to the screen. LessonID
// ties the reply to the lesson it was asked about; replies for another
// lesson are discarded.
type chatReplyMsg struct {
	LessonID string
	Text     string
}

// LessonScreen shows a lesson's content, the completion action and the
// CodeGenie chat.
type LessonScreen struct {
	machine *state.Machine
	tutor   *chat.Service

	lessonID  string
	scroll    int
	chatFocus bool
	chatInput components.TextInput
	messages  []chatMessage
	waiting   bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a screen for the machine's selected lesson. tutor must
// be non-nil; a service wrapping a nil provider still answers with the
// not-configured apology.
func New(m *state.Machine, tutor *chat.Service) *LessonScreen {
	s := &LessonScreen{
		machine:   m,
		tutor:     tutor,
		chatInput: components.NewTextInput("Pregúntale a CodeGenie...", 200),
	}
	if l := m.SelectedLesson(); l != nil {
		s.lessonID = l.ID
		if l.AIContext != "" {
			s.messages = append(s.messages, chatMessage{
				fromTutor: true,
				text:      "¡Hola! " + l.AIContext,
			})
		}
	}
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	if l := s.machine.SelectedLesson(); l != nil {
		return l.Title
	}
	return "Lección"
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.chatFocus {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Preguntar"},
			{Key: "Tab", Description: "Volver a la lección"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Desplazar"},
		{Key: "c", Description: "Completar"},
		{Key: "Tab", Description: "Chat"},
		{Key: "Esc", Description: "Lecciones"},
	}
	if s.completed() {
		if catalog.IsFinalCourseLesson(s.lessonID) {
			hints = append(hints, layout.KeyHint{Key: "f", Description: "Certificado"})
		} else if catalog.NextLesson(s.lessonID) != nil {
			hints = append(hints, layout.KeyHint{Key: "n", Description: "Siguiente"})
		}
	}
	return hints
}

func (s *LessonScreen) completed() bool {
	p := s.machine.ActiveProfile()
	return p != nil && p.HasCompleted(s.lessonID)
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.machine.SelectedLesson() == nil {
		s.machine.BackToLessons()
		return s, nil
	}

	switch msg := msg.(type) {
	case chatReplyMsg:
		if msg.LessonID != s.lessonID {
			return s, nil
		}
		s.waiting = false
		s.messages = append(s.messages, chatMessage{fromTutor: true, text: msg.Text})
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.chatFocus {
		var cmd tea.Cmd
		s.chatInput, cmd = s.chatInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "tab" {
		s.chatFocus = !s.chatFocus
		if s.chatFocus {
			return s, s.chatInput.Init()
		}
		return s, nil
	}

	if s.chatFocus {
		if msg.String() == "enter" {
			return s, s.ask()
		}
		var cmd tea.Cmd
		s.chatInput, cmd = s.chatInput.Update(msg)
		return s, cmd
	}

	switch msg.String() {
	case "esc":
		s.machine.BackToLessons()
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "c":
		s.machine.CompleteLesson(s.lessonID)
	case "n":
		if s.completed() {
			if next := catalog.NextLesson(s.lessonID); next != nil {
				_, lvl := catalog.LessonByID(next.ID)
				s.machine.SelectLevel(lvl.ID)
				s.machine.SelectLesson(next.ID)
			}
		}
	case "f":
		if s.completed() && catalog.IsFinalCourseLesson(s.lessonID) {
			s.machine.NavigateToCertificate()
		}
	}
	return s, nil
}

func (s *LessonScreen) ask() tea.Cmd {
	question := strings.TrimSpace(s.chatInput.Value())
	if question == "" || s.waiting {
		return nil
	}

	lesson := s.machine.SelectedLesson()
	if lesson == nil {
		return nil
	}

	s.messages = append(s.messages, chatMessage{text: question})
	s.chatInput = components.NewTextInput("Pregúntale a CodeGenie...", 200)
	s.waiting = true

	tutor := s.tutor
	lessonID := s.lessonID
	content := lesson.Content
	title := lesson.Title

	return tea.Batch(s.chatInput.Init(), func() tea.Msg {
		reply := tutor.Ask(context.Background(), question, content, title)
		return chatReplyMsg{LessonID: lessonID, Text: reply.Text}
	})
}

func (s *LessonScreen) View(width, height int) string {
	lesson := s.machine.SelectedLesson()
	if lesson == nil {
		return ""
	}

	contentWidth := width - 8
	if contentWidth < 20 {
		contentWidth = 20
	}

	body := renderContent(lesson.Content, contentWidth)
	lines := strings.Split(body, "\n")

	chatBox := s.renderChat(contentWidth)
	chatHeight := lipgloss.Height(chatBox)

	statusLine := s.renderStatus()

	visible := height - chatHeight - 3
	if visible < 3 {
		visible = 3
	}

	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}

	end := s.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	window := strings.Join(lines[s.scroll:end], "\n")

	sections := []string{window, "", statusLine, chatBox}
	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().Padding(0, 4).Render(content)
}

func (s *LessonScreen) renderStatus() string {
	if s.completed() {
		return theme.Correct.Render("✓ Lección completada  (+100 XP)")
	}
	return theme.Hint.Render("Pulsa c para marcar la lección como completada")
}

func (s *LessonScreen) renderChat(width int) string {
	var b strings.Builder

	tutorStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Width(width - 4)
	userStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 4)

	// Show only the tail of the transcript to keep the box compact.
	start := 0
	if len(s.messages) > 4 {
		start = len(s.messages) - 4
	}
	for _, m := range s.messages[start:] {
		if m.fromTutor {
			b.WriteString(tutorStyle.Render("🧞 " + m.text))
		} else {
			b.WriteString(userStyle.Render("Tú: " + m.text))
		}
		b.WriteString("\n")
	}

	if s.waiting {
		b.WriteString(theme.Hint.Render(thinkingText))
		b.WriteString("\n")
	}

	b.WriteString(s.chatInput.View())

	box := lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if s.chatFocus {
		box = box.BorderForeground(theme.Primary)
	} else {
		box = box.BorderForeground(theme.Border)
	}
	return box.Render(strings.TrimRight(b.String(), "\n"))
}

// renderContent styles the lesson text, rendering fenced code segments
// in a code block style.
func renderContent(content string, width int) string {
	textStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
	codeStyle := theme.CodeBlock.Width(width)

	var out []string
	rest := content
	for {
		start := strings.Index(rest, codeStartMarker)
		if start < 0 {
			if t := strings.TrimSpace(rest); t != "" {
				out = append(out, textStyle.Render(t))
			}
			break
		}

		if t := strings.TrimSpace(rest[:start]); t != "" {
			out = append(out, textStyle.Render(t))
		}
		rest = rest[start+len(codeStartMarker):]

		end := strings.Index(rest, codeEndMarker)
		if end < 0 {
			if t := strings.TrimSpace(rest); t != "" {
				out = append(out, codeStyle.Render(t))
			}
			break
		}
		if t := strings.TrimSpace(rest[:end]); t != "" {
			out = append(out, codeStyle.Render(t))
		}
		rest = rest[end+len(codeEndMarker):]
	}

	return strings.Join(out, "\n\n")
}
