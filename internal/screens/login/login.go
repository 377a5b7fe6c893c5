package login

import (
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

type step int

const (
	stepEmail step = iota
	stepName
	stepPlan
)

// LoginScreen handles the email check and, for new accounts, the
// registration flow: name plus plan selection.
type LoginScreen struct {
	machine *state.Machine

	step       step
	emailInput components.TextInput
	nameInput  components.TextInput
	planIndex  int
	email      string
	errMsg     string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a new LoginScreen starting at the email step.
func New(m *state.Machine) *LoginScreen {
	return &LoginScreen{
		machine:    m,
		emailInput: components.NewTextInput("tu@correo.com", 64),
		nameInput:  components.NewTextInput("Nombre completo", 48),
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.emailInput.Init()
}

func (l *LoginScreen) Title() string {
	return "Iniciar Sesión"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	switch l.step {
	case stepPlan:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Elegir plan"},
			{Key: "Enter", Description: "Registrarse"},
			{Key: "Esc", Description: "Volver"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continuar"},
			{Key: "Esc", Description: "Volver"},
		}
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "esc":
			switch l.step {
			case stepEmail:
				l.machine.NavigateHome()
			case stepName:
				l.step = stepEmail
				l.errMsg = ""
			case stepPlan:
				l.step = stepName
				l.errMsg = ""
			}
			return l, nil
		case "enter":
			return l.submit()
		}
	}

	var cmd tea.Cmd
	switch l.step {
	case stepEmail:
		l.emailInput, cmd = l.emailInput.Update(msg)
		if isKey {
			l.emailInput.ClearMark()
			l.errMsg = ""
		}
	case stepName:
		l.nameInput, cmd = l.nameInput.Update(msg)
		if isKey {
			l.errMsg = ""
		}
	case stepPlan:
		if isKey {
			switch kmsg.String() {
			case "up", "k":
				if l.planIndex > 0 {
					l.planIndex--
				}
			case "down", "j":
				if l.planIndex < len(catalog.Plans)-1 {
					l.planIndex++
				}
			}
		}
	}
	return l, cmd
}

func (l *LoginScreen) submit() (screen.Screen, tea.Cmd) {
	switch l.step {
	case stepEmail:
		email := strings.TrimSpace(l.emailInput.Value())
		if !state.ValidEmail(email) {
			l.emailInput.Submit(false)
			l.errMsg = "Introduce un correo válido."
			return l, nil
		}
		l.emailInput.Submit(true)
		l.email = email
		if l.machine.CheckEmail(email) {
			// Known account: the machine has navigated home.
			return l, nil
		}
		l.step = stepName
		return l, l.nameInput.Init()

	case stepName:
		name := strings.TrimSpace(l.nameInput.Value())
		if name == "" {
			l.errMsg = "Dinos tu nombre para crear tu cuenta."
			return l, nil
		}
		l.step = stepPlan
		return l, nil

	case stepPlan:
		name := strings.TrimSpace(l.nameInput.Value())
		plan := catalog.Plans[l.planIndex].Tier
		l.machine.Register(name, l.email, plan)
		return l, nil
	}
	return l, nil
}

func (l *LoginScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Bienvenido a "+catalog.AppName), "")

	switch l.step {
	case stepEmail:
		sections = append(sections,
			theme.Body.Render("Escribe tu correo para entrar o crear una cuenta:"),
			"",
			l.emailInput.View(),
		)
	case stepName:
		sections = append(sections,
			theme.Body.Render("¡Cuenta nueva! ¿Cómo te llamas?"),
			theme.Hint.Render(l.email),
			"",
			l.nameInput.View(),
		)
	case stepPlan:
		sections = append(sections,
			theme.Body.Render("Elige tu plan:"),
			"",
			l.renderPlans(width),
		)
	}

	if l.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(l.errMsg))
	}

	content := strings.Join(sections, "\n")
	return layout.Center(content, width, height)
}

func (l *LoginScreen) renderPlans(width int) string {
	cardWidth := 44
	if width < cardWidth+8 {
		cardWidth = width - 8
	}

	cards := make([]string, 0, len(catalog.Plans))
	for i, p := range catalog.Plans {
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(string(p.Tier)))
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(p.Price))
		b.WriteString("\n")
		for _, f := range p.Features {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("• " + f))
			b.WriteString("\n")
		}

		card := lipgloss.NewStyle().
			Width(cardWidth).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
		if i == l.planIndex {
			card = card.BorderForeground(theme.Primary)
		} else {
			card = card.BorderForeground(theme.Border)
		}
		cards = append(cards, card.Render(strings.TrimRight(b.String(), "\n")))
	}

	return strings.Join(cards, "\n")
}
