package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codegenio/codegenio/internal/catalog"
	"github.com/codegenio/codegenio/internal/screen"
	"github.com/codegenio/codegenio/internal/state"
	"github.com/codegenio/codegenio/internal/ui/components"
	"github.com/codegenio/codegenio/internal/ui/layout"
	"github.com/codegenio/codegenio/internal/ui/theme"
)

// HomeScreen is the landing screen: hero, level cards and the main
// navigation actions.
type HomeScreen struct {
	machine *state.Machine
	menu    components.Menu
	menuKey string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(m *state.Machine) *HomeScreen {
	h := &HomeScreen{machine: m, menuKey: menuKey(m)}
	h.menu = components.NewMenu(h.buildMenu())
	return h
}

// menuKey summarizes the session facts the menu depends on.
func menuKey(m *state.Machine) string {
	key := ""
	if acct := m.Account(); acct != nil {
		key = acct.ID
	}
	if p := m.ActiveProfile(); p != nil {
		key += "/" + p.ID
	}
	return key
}

func (h *HomeScreen) buildMenu() []components.MenuItem {
	m := h.machine
	items := make([]components.MenuItem, 0, len(catalog.Levels)+4)

	for i := range catalog.Levels {
		lvl := catalog.Levels[i]
		items = append(items, components.MenuItem{
			Label: "Nivel " + lvl.Title,
			Action: func() tea.Cmd {
				m.SelectLevel(lvl.ID)
				return nil
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "Prueba de Nivel",
		Action: func() tea.Cmd {
			m.StartTest()
			return nil
		},
	})

	if m.Account() == nil {
		items = append(items, components.MenuItem{
			Label: "Iniciar Sesión",
			Action: func() tea.Cmd {
				m.NavigateToLogin()
				return nil
			},
		})
	} else {
		active := m.ActiveProfile()
		for i := range m.Profiles() {
			p := m.Profiles()[i]
			if active != nil && p.ID == active.ID {
				continue
			}
			items = append(items, components.MenuItem{
				Label: "Cambiar a " + p.Name,
				Action: func() tea.Cmd {
					m.SwitchProfile(p.ID)
					return nil
				},
			})
		}
		items = append(items, components.MenuItem{
			Label: "Panel de Control",
			Action: func() tea.Cmd {
				m.NavigateToDashboard()
				return nil
			},
		})
		items = append(items, components.MenuItem{
			Label: "Cerrar Sesión",
			Action: func() tea.Cmd {
				m.Logout()
				return nil
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "Salir",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)

	// Logging out or switching profiles lands back on this same screen,
	// so rebuild the menu when the session it reflects changes.
	if key := menuKey(h.machine); key != h.menuKey {
		h.menuKey = key
		h.menu = components.NewMenu(h.buildMenu())
	}
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navegar"},
		{Key: "Enter", Description: "Seleccionar"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render(catalog.AppName)
	slogan := theme.Subtitle.Render(catalog.AppSlogan)
	sections = append(sections, title, slogan, "")

	if p := h.machine.ActiveProfile(); p != nil {
		hello := lipgloss.NewStyle().
			Foreground(theme.AvatarColor(p.AvatarColor)).
			Bold(true).
			Render(fmt.Sprintf("¡Hola, %s!", p.Name))
		progress := components.NewProgressBar(
			"Progreso del curso",
			float64(len(p.CompletedLessons))/float64(catalog.TotalLessons()),
			true,
			46,
		)
		sections = append(sections, hello, "", progress.View(), "")
	} else {
		welcome := lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("Aprende a programar con lecciones divertidas y tu genio tutor.")
		sections = append(sections, welcome, "")
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return layout.Center(content, width, height)
}
