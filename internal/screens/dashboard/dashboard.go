package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codegenio/codegenio/internal/catalog"
	"github.com/codegenio/codegenio/internal/export"
	"github.com/codegenio/codegenio/internal/screen"
	"github.com/codegenio/codegenio/internal/state"
	"github.com/codegenio/codegenio/internal/ui/components"
	"github.com/codegenio/codegenio/internal/ui/layout"
	"github.com/codegenio/codegenio/internal/ui/theme"
)

type mode int

const (
	modeList mode = iota
	modeAddProfile
	modeLogo
)

// DashboardScreen shows the account's profiles and the management
// actions: switch profile, add profile, export the performance report
// and, for institution accounts, the logo.
type DashboardScreen struct {
	machine   *state.Machine
	exportDir string

	mode     mode
	selected int
	input    components.TextInput
	status   string
	statusOK bool
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen. exportDir is where CSV reports are
// written.
func New(m *state.Machine, exportDir string) *DashboardScreen {
	return &DashboardScreen{machine: m, exportDir: exportDir}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Panel de Control"
}

func (d *DashboardScreen) isInstitution() bool {
	acct := d.machine.Account()
	return acct != nil && catalog.PlanTier(acct.Plan) == catalog.PlanInstitucion
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.mode != modeList {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Guardar"},
			{Key: "Esc", Description: "Cancelar"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Navegar"},
		{Key: "Enter", Description: "Activar perfil"},
	}
	if d.machine.CanAddProfile() {
		hints = append(hints, layout.KeyHint{Key: "a", Description: "Añadir perfil"})
	}
	hints = append(hints, layout.KeyHint{Key: "e", Description: "Exportar CSV"})
	if d.isInstitution() {
		hints = append(hints, layout.KeyHint{Key: "l", Description: "Logo"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Inicio"})
	return hints
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if d.machine.Account() == nil {
		d.machine.NavigateHome()
		return d, nil
	}

	kmsg, isKey := msg.(tea.KeyMsg)

	if d.mode != modeList {
		if isKey {
			switch kmsg.String() {
			case "esc":
				d.mode = modeList
				return d, nil
			case "enter":
				d.submitInput()
				return d, nil
			}
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}

	if !isKey {
		return d, nil
	}

	profiles := d.machine.Profiles()
	switch kmsg.String() {
	case "esc":
		d.machine.NavigateHome()
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(profiles)-1 {
			d.selected++
		}
	case "enter":
		if d.selected < len(profiles) {
			d.machine.SwitchProfile(profiles[d.selected].ID)
		}
	case "a":
		if d.machine.CanAddProfile() {
			d.mode = modeAddProfile
			d.input = components.NewTextInput("Nombre del perfil", 48)
			d.status = ""
			return d, d.input.Init()
		}
	case "e":
		d.exportReport()
	case "l":
		if d.isInstitution() {
			d.mode = modeLogo
			d.input = components.NewTextInput("Texto o ruta del logo (vacío para quitar)", 120)
			d.status = ""
			return d, d.input.Init()
		}
	}
	return d, nil
}

func (d *DashboardScreen) submitInput() {
	value := strings.TrimSpace(d.input.Value())
	switch d.mode {
	case modeAddProfile:
		if value == "" {
			d.status = "El perfil necesita un nombre."
			d.statusOK = false
			return
		}
		d.machine.CreateProfile(value)
		d.status = fmt.Sprintf("Perfil %q creado.", value)
		d.statusOK = true
	case modeLogo:
		d.machine.UpdateInstitutionLogo(value)
		if value == "" {
			d.status = "Logo eliminado."
		} else {
			d.status = "Logo actualizado."
		}
		d.statusOK = true
	}
	d.mode = modeList
}

func (d *DashboardScreen) exportReport() {
	path, err := export.WriteFile(d.exportDir, d.machine.Profiles(), time.Now())
	if err != nil {
		d.status = "No se pudo exportar el informe: " + err.Error()
		d.statusOK = false
		return
	}
	d.status = "Informe guardado en " + path
	d.statusOK = true
}

func (d *DashboardScreen) View(width, height int) string {
	acct := d.machine.Account()
	if acct == nil {
		return ""
	}

	var sections []string
	sections = append(sections,
		theme.Title.Render("Panel de Control"),
		theme.Subtitle.Render(fmt.Sprintf("%s · %s", acct.Name, acct.Plan)),
		"",
	)

	if logo := d.machine.InstitutionLogo(); logo != "" && d.isInstitution() {
		sections = append(sections, theme.Hint.Render("Logo: "+logo), "")
	}

	sections = append(sections, d.renderProfiles())

	switch d.mode {
	case modeAddProfile:
		sections = append(sections, "", theme.Body.Render("Nuevo perfil:"), d.input.View())
	case modeLogo:
		sections = append(sections, "", theme.Body.Render("Logo de la institución:"), d.input.View())
	}

	if d.status != "" {
		style := theme.Correct
		if !d.statusOK {
			style = theme.Incorrect
		}
		sections = append(sections, "", style.Render(d.status))
	}

	content := strings.Join(sections, "\n")
	return layout.Center(content, width, height)
}

func (d *DashboardScreen) renderProfiles() string {
	profiles := d.machine.Profiles()
	active := d.machine.ActiveProfile()

	var rows []string
	for i, p := range profiles {
		avatar := lipgloss.NewStyle().
			Foreground(theme.AvatarColor(p.AvatarColor)).
			Render("●")

		name := p.Name
		if p.IsEducator {
			name += " (educador)"
		}
		if active != nil && active.ID == p.ID {
			name += "  ← activo"
		}

		line := fmt.Sprintf("%s  %-28s %5d XP   %d lecciones", avatar, name, p.XP, len(p.CompletedLessons))
		if i == d.selected && d.mode == modeList {
			rows = append(rows, theme.Selected.Render("▸ "+line))
		} else {
			rows = append(rows, theme.Unselected.Render("  "+line))
		}
	}

	return strings.Join(rows, "\n")
}
