package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codegenio/codegenio/internal/chat"
	"github.com/codegenio/codegenio/internal/router"
	"github.com/codegenio/codegenio/internal/screen"
	certscreen "github.com/codegenio/codegenio/internal/screens/certificate"
	"github.com/codegenio/codegenio/internal/screens/dashboard"
	"github.com/codegenio/codegenio/internal/screens/home"
	"github.com/codegenio/codegenio/internal/screens/lesson"
	"github.com/codegenio/codegenio/internal/screens/levels"
	"github.com/codegenio/codegenio/internal/screens/login"
	"github.com/codegenio/codegenio/internal/screens/placement"
	"github.com/codegenio/codegenio/internal/state"
	"github.com/codegenio/codegenio/internal/ui/layout"
)

// Options carries the wired services the UI depends on.
type Options struct {
	Machine   *state.Machine
	Tutor     *chat.Service
	ExportDir string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	machine *state.Machine
	router  *router.Router
	width   int
	height  int
}

// newAppModel creates the root model with a view-addressed router.
func newAppModel(opts Options) AppModel {
	build := func(v state.View) screen.Screen {
		switch v {
		case state.ViewHome:
			return home.New(opts.Machine)
		case state.ViewLevelLessons:
			return levels.New(opts.Machine)
		case state.ViewLessonContent:
			return lesson.New(opts.Machine, opts.Tutor)
		case state.ViewDashboard:
			return dashboard.New(opts.Machine, opts.ExportDir)
		case state.ViewPlacementTest:
			return placement.New(opts.Machine)
		case state.ViewCertificate:
			return certscreen.New(opts.Machine, opts.ExportDir)
		case state.ViewLogin:
			return login.New(opts.Machine)
		}
		return home.New(opts.Machine)
	}

	return AppModel{
		machine: opts.Machine,
		router:  router.New(opts.Machine, build),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	profileName := ""
	xp := 0
	if p := m.machine.ActiveProfile(); p != nil {
		profileName = p.Name
		xp = p.XP
	}

	header := layout.RenderHeader(title, profileName, xp, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Seleccionar"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Salir"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
