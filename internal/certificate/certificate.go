// Package certificate renders the course-completion certificate.
// Rendering is pure; writing the printable file is the only effect.
package certificate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codegenio/codegenio/internal/catalog"
)

const innerWidth = 64

// Data is everything substituted into the fixed template.
type Data struct {
	LearnerName     string
	Date            time.Time
	InstitutionLogo string // optional; rendered as an attribution line
}

// Render produces the printable certificate text.
func Render(d Data) string {
	var b strings.Builder

	line := func(s string) {
		pad := innerWidth - len([]rune(s))
		left := pad / 2
		right := pad - left
		fmt.Fprintf(&b, "║%s%s%s║\n", strings.Repeat(" ", left), s, strings.Repeat(" ", right))
	}

	b.WriteString("╔" + strings.Repeat("═", innerWidth) + "╗\n")
	line("")
	line("★  CERTIFICADO DE FINALIZACIÓN  ★")
	line("")
	line(catalog.AppName)
	line("")
	if d.InstitutionLogo != "" {
		line("[ " + d.InstitutionLogo + " ]")
		line("")
	}
	line("certifica con orgullo que")
	line("")
	line("✦  " + d.LearnerName + "  ✦")
	line("")
	line("ha completado exitosamente todo el currículo de")
	line("Introducción a la Programación")
	line("")
	line("Fecha: " + formatDate(d.Date))
	line("El Equipo de CodeGenio")
	line("")
	b.WriteString("╚" + strings.Repeat("═", innerWidth) + "╝")

	return b.String()
}

// formatDate renders the es-ES short date (day/month/year, no
// zero padding).
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// FileName returns the certificate file name for a learner.
func FileName(learnerName string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(learnerName), "_"))
	if slug == "" {
		slug = "certificado"
	}
	return fmt.Sprintf("certificado_CodeGenio_%s.txt", slug)
}

// WriteFile writes the rendered certificate into dir and returns the
// full path. This stands in for the browser print dialog.
func WriteFile(dir string, d Data) (string, error) {
	path := filepath.Join(dir, FileName(d.LearnerName))
	if err := os.WriteFile(path, []byte(Render(d)+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write certificate: %w", err)
	}
	return path, nil
}
