package certificate

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	out := Render(Data{
		LearnerName: "Ana",
		Date:        time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
	})

	for _, want := range []string{
		"CERTIFICADO DE FINALIZACIÓN",
		"CodeGenio",
		"Ana",
		"Fecha: 7/3/2026",
		"El Equipo de CodeGenio",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("certificate missing %q", want)
		}
	}

	if strings.Contains(out, "[ ") {
		t.Error("no logo given, no attribution line")
	}
}

func TestRenderWithLogo(t *testing.T) {
	out := Render(Data{
		LearnerName:     "Ana",
		Date:            time.Now(),
		InstitutionLogo: "Colegio San Martín",
	})
	if !strings.Contains(out, "[ Colegio San Martín ]") {
		t.Error("expected the institution attribution line")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ana García", "certificado_CodeGenio_ana_garcía.txt"},
		{"Luis", "certificado_CodeGenio_luis.txt"},
		{"", "certificado_CodeGenio_certificado.txt"},
	}

	for _, tt := range tests {
		if got := FileName(tt.name); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFile(dir, Data{LearnerName: "Ana", Date: time.Now()})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "Ana") {
		t.Error("written certificate must name the learner")
	}
}
