package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/codegenio/codegenio/internal/state"
)

func TestReport(t *testing.T) {
	profiles := []state.Profile{
		{Name: "Ana", XP: 300, CompletedLessons: []string{"ini-1", "ini-2", "ini-3"}},
		{Name: "Luis", XP: 0, CompletedLessons: []string{}},
	}

	got := Report(profiles)
	want := Header + "\n" +
		`"Ana",300,3` + "\n" +
		`"Luis",0,0`
	if got != want {
		t.Errorf("Report() =\n%s\nwant\n%s", got, want)
	}
}

func TestReportEscapesQuotes(t *testing.T) {
	profiles := []state.Profile{
		{Name: `Ana "La Genia" García`, XP: 100, CompletedLessons: []string{"ini-1"}},
	}

	got := Report(profiles)
	wantRow := `"Ana ""La Genia"" García",100,1`
	if !strings.Contains(got, wantRow) {
		t.Errorf("Report() = %q, want row %q", got, wantRow)
	}
}

func TestReportEmpty(t *testing.T) {
	if got := Report(nil); got != Header {
		t.Errorf("empty report = %q, want just the header", got)
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)
	want := "reporte_rendimiento_CodeGenio_2026-03-07.csv"
	if got := FileName(now); got != want {
		t.Errorf("FileName() = %q, want %q", got, want)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	profiles := []state.Profile{
		{Name: "Ana", XP: 100, CompletedLessons: []string{"ini-1"}},
	}

	path, err := WriteFile(dir, profiles, now)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path %q not under %q", path, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, Header+"\n") {
		t.Errorf("file must start with the header, got %q", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Error("file must end with a newline")
	}
}
