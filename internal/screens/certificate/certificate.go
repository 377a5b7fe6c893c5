package certificate

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	cert "github.com/codegenio/codegenio/internal/certificate"
	"github.com/codegenio/codegenio/internal/screen"
	"github.com/codegenio/codegenio/internal/state"
	"github.com/codegenio/codegenio/internal/ui/layout"
	"github.com/codegenio/codegenio/internal/ui/theme"
)

// CertificateScreen shows the completion certificate and lets the
// learner save it to a file.
type CertificateScreen struct {
	machine  *state.Machine
	saveDir  string
	status   string
	statusOK bool
}

var _ screen.Screen = (*CertificateScreen)(nil)
var _ screen.KeyHintProvider = (*CertificateScreen)(nil)

// New creates a CertificateScreen. saveDir is where the certificate
// file is written on save.
func New(m *state.Machine, saveDir string) *CertificateScreen {
	return &CertificateScreen{machine: m, saveDir: saveDir}
}

func (c *CertificateScreen) Init() tea.Cmd {
	return nil
}

func (c *CertificateScreen) Title() string {
	return "Certificado"
}

func (c *CertificateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "s", Description: "Guardar"},
		{Key: "Esc", Description: "Inicio"},
	}
}

func (c *CertificateScreen) data() cert.Data {
	name := "Estudiante"
	if p := c.machine.ActiveProfile(); p != nil {
		name = p.Name
	}
	return cert.Data{
		LearnerName:     name,
		Date:            time.Now(),
		InstitutionLogo: c.machine.InstitutionLogo(),
	}
}

func (c *CertificateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "esc":
		c.machine.NavigateHome()
	case "s":
		path, err := cert.WriteFile(c.saveDir, c.data())
		if err != nil {
			c.status = "No se pudo guardar el certificado: " + err.Error()
			c.statusOK = false
		} else {
			c.status = "Certificado guardado en " + path
			c.statusOK = true
		}
	}
	return c, nil
}

func (c *CertificateScreen) View(width, height int) string {
	rendered := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(cert.Render(c.data()))

	sections := []string{rendered}
	if c.status != "" {
		style := theme.Correct
		if !c.statusOK {
			style = theme.Incorrect
		}
		sections = append(sections, "", style.Render(c.status))
	}

	content := strings.Join(sections, "\n")
	return layout.Center(content, width, height)
}
