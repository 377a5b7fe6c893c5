// Package export produces the dashboard's CSV progress report.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codegenio/codegenio/internal/state"
)

// Header is the fixed first row of the report.
const Header = "Nombre,Puntos de Experiencia (XP),Lecciones Completadas"

// Report renders one row per profile under the fixed header. Names are
// always quoted with embedded quotes doubled, matching the file format
// consumers of the report already expect.
func Report(profiles []state.Profile) string {
	rows := make([]string, 0, len(profiles)+1)
	rows = append(rows, Header)
	for _, p := range profiles {
		name := `"` + strings.ReplaceAll(p.Name, `"`, `""`) + `"`
		rows = append(rows, fmt.Sprintf("%s,%d,%d", name, p.XP, len(p.CompletedLessons)))
	}
	return strings.Join(rows, "\n")
}

// FileName returns the date-stamped report file name for now.
func FileName(now time.Time) string {
	return fmt.Sprintf("reporte_rendimiento_CodeGenio_%s.csv", now.Format("2006-01-02"))
}

// WriteFile writes the report for profiles into dir and returns the
// full path of the written file.
func WriteFile(dir string, profiles []state.Profile, now time.Time) (string, error) {
	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, []byte(Report(profiles)+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
