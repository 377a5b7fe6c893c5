package state

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/codegenio/codegenio/internal/catalog"
)

// memGateway is an in-memory Gateway for tests.
type memGateway struct {
	states  map[string]AppState
	active  string
	failing bool
	saves   int
}

func newMemGateway() *memGateway {
	return &memGateway{states: make(map[string]AppState)}
}

func (g *memGateway) LoadActiveAccountState() (*AppState, error) {
	if g.failing {
		return nil, errors.New("gateway down")
	}
	if g.active == "" {
		return nil, nil
	}
	return g.AccountState(g.active)
}

func (g *memGateway) SaveAccountState(email string, s AppState) error {
	if g.failing {
		return errors.New("gateway down")
	}
	g.saves++
	g.states[email] = s
	return nil
}

func (g *memGateway) SetActiveAccount(email string) error {
	if g.failing {
		return errors.New("gateway down")
	}
	g.active = email
	return nil
}

func (g *memGateway) AccountExists(email string) (bool, error) {
	if g.failing {
		return false, errors.New("gateway down")
	}
	_, ok := g.states[email]
	return ok, nil
}

func (g *memGateway) AccountState(email string) (*AppState, error) {
	if g.failing {
		return nil, errors.New("gateway down")
	}
	s, ok := g.states[email]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func registeredMachine(t *testing.T, plan catalog.PlanTier) (*Machine, *memGateway) {
	t.Helper()
	gw := newMemGateway()
	m := NewMachine(gw, quietLogger())
	m.Register("Ana García", "ana@ejemplo.com", plan)
	return m, gw
}

func TestNewMachineStartsAtHome(t *testing.T) {
	m := NewMachine(nil, nil)
	if m.View() != ViewHome {
		t.Errorf("expected home view, got %v", m.View())
	}
	if m.Account() != nil {
		t.Error("expected no account on cold start")
	}
}

func TestRegister(t *testing.T) {
	m, gw := registeredMachine(t, catalog.PlanIndividual)

	acct := m.Account()
	if acct == nil {
		t.Fatal("expected an account after Register")
	}
	if acct.Name != "Ana García" || acct.Email != "ana@ejemplo.com" {
		t.Errorf("unexpected account: %+v", acct)
	}

	profiles := m.Profiles()
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	p := profiles[0]
	if p.Name != "Ana" {
		t.Errorf("profile name = %q, want first name %q", p.Name, "Ana")
	}
	if p.AvatarColor != AvatarPalette[0] {
		t.Errorf("avatar = %q, want %q", p.AvatarColor, AvatarPalette[0])
	}
	if p.IsEducator {
		t.Error("individual plan must not mark the profile as educator")
	}

	active := m.ActiveProfile()
	if active == nil || active.ID != p.ID {
		t.Error("expected the first profile to be active")
	}
	if m.View() != ViewHome {
		t.Errorf("expected home after register, got %v", m.View())
	}
	if gw.active != "ana@ejemplo.com" {
		t.Errorf("active account pointer = %q", gw.active)
	}
	if _, ok := gw.states["ana@ejemplo.com"]; !ok {
		t.Error("expected the snapshot to be persisted")
	}
}

func TestRegisterInstitutionMarksEducator(t *testing.T) {
	m, _ := registeredMachine(t, catalog.PlanInstitucion)
	if !m.Profiles()[0].IsEducator {
		t.Error("institution plan must mark the first profile as educator")
	}
}

func TestRestore(t *testing.T) {
	gw := newMemGateway()
	first := NewMachine(gw, quietLogger())
	first.Register("Ana García", "ana@ejemplo.com", catalog.PlanFamiliar)
	first.CompleteLesson("ini-1")

	second := NewMachine(gw, quietLogger())
	second.Restore()

	if second.Account() == nil {
		t.Fatal("expected restored account")
	}
	p := second.ActiveProfile()
	if p == nil || !p.HasCompleted("ini-1") || p.XP != XPPerLesson {
		t.Errorf("restored profile = %+v", p)
	}
}

func TestRestoreFailureStartsCold(t *testing.T) {
	gw := newMemGateway()
	gw.failing = true
	m := NewMachine(gw, quietLogger())
	m.Restore()
	if m.Account() != nil || m.View() != ViewHome {
		t.Error("a failing gateway must leave the machine cold")
	}
}

func TestAuthGuards(t *testing.T) {
	tests := []struct {
		name string
		act  func(m *Machine)
	}{
		{"dashboard", func(m *Machine) { m.NavigateToDashboard() }},
		{"placement test", func(m *Machine) { m.StartTest() }},
		{"select level", func(m *Machine) { m.SelectLevel(catalog.LevelInicial) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(nil, quietLogger())
			tt.act(m)
			if m.View() != ViewLogin {
				t.Errorf("expected redirect to login, got %v", m.View())
			}
		})
	}
}

func TestSelectLevelUnknownIgnored(t *testing.T) {
	m, _ := registeredMachine(t, catalog.PlanIndividual)
	m.SelectLevel("experto")
	if m.View() != ViewHome || m.SelectedLevel() != nil {
		t.Error("unknown level id must be ignored")
	}
}

func TestSelectLesson(t *testing.T) {
	m, _ := registeredMachine(t, catalog.PlanIndividual)
	m.SelectLevel(catalog.LevelInicial)

	m.SelectLesson("int-1")
	if m.SelectedLesson() != nil {
		t.Error("lesson outside the selected level must be ignored")
	}

	m.SelectLesson("ini-1")
	if m.View() != ViewLessonContent {
		t.Errorf("expected lesson view, got %v", m.View())
	}
	if l := m.SelectedLesson(); l == nil || l.ID != "ini-1" {
		t.Errorf("selected lesson = %v", l)
	}

	m.BackToLessons()
	if m.View() != ViewLevelLessons || m.SelectedLesson() != nil {
		t.Error("expected to be back at the lesson list")
	}
}

func TestCompleteLessonIdempotent(t *testing.T) {
	m, gw := registeredMachine(t, catalog.PlanIndividual)
	savesBefore := gw.saves

	m.CompleteLesson("ini-1")
	m.CompleteLesson("ini-1")
	m.CompleteLesson("ini-1")

	p := m.ActiveProfile()
	if p.XP != XPPerLesson {
		t.Errorf("XP = %d, want %d", p.XP, XPPerLesson)
	}
	if len(p.CompletedLessons) != 1 {
		t.Errorf("completed = %v, want one entry", p.CompletedLessons)
	}
	if gw.saves != savesBefore+1 {
		t.Errorf("expected exactly one persist, got %d", gw.saves-savesBefore)
	}
}

func TestCompleteLessonWithoutProfile(t *testing.T) {
	m := NewMachine(nil, quietLogger())
	m.CompleteLesson("ini-1") // must not panic
}

func TestCompleteTest(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, catalog.LevelInicial},
		{2, catalog.LevelIntermedio},
		{5, catalog.LevelAvanzado},
	}

	for _, tt := range tests {
		m, _ := registeredMachine(t, catalog.PlanIndividual)
		lvl := m.CompleteTest(tt.score)
		if lvl.ID != tt.want {
			t.Errorf("CompleteTest(%d) recommended %q, want %q", tt.score, lvl.ID, tt.want)
		}
		if m.View() != ViewLevelLessons {
			t.Errorf("expected lesson list after test, got %v", m.View())
		}
		if got := m.SelectedLevel(); got == nil || got.ID != tt.want {
			t.Errorf("selected level = %v, want %q", got, tt.want)
		}
	}
}

func TestCheckEmail(t *testing.T) {
	gw := newMemGateway()
	seed := NewMachine(gw, quietLogger())
	seed.Register("Ana García", "ana@ejemplo.com", catalog.PlanFamiliar)
	seed.Logout()

	m := NewMachine(gw, quietLogger())
	m.NavigateToLogin()

	if m.CheckEmail("no-es-un-correo") {
		t.Error("invalid email must not authenticate")
	}
	if m.CheckEmail("otro@ejemplo.com") {
		t.Error("unknown email must not authenticate")
	}
	if m.View() != ViewLogin {
		t.Errorf("failed lookups must stay on login, got %v", m.View())
	}

	if !m.CheckEmail("ana@ejemplo.com") {
		t.Fatal("known email must authenticate")
	}
	if m.View() != ViewHome {
		t.Errorf("expected home after login, got %v", m.View())
	}
	if m.Account() == nil || m.Account().Email != "ana@ejemplo.com" {
		t.Errorf("account = %+v", m.Account())
	}
	if gw.active != "ana@ejemplo.com" {
		t.Errorf("active pointer = %q", gw.active)
	}
}

func TestLogout(t *testing.T) {
	m, gw := registeredMachine(t, catalog.PlanFamiliar)
	m.SelectLevel(catalog.LevelInicial)
	m.Logout()

	if m.Account() != nil || m.ActiveProfile() != nil {
		t.Error("logout must clear the session")
	}
	if m.View() != ViewHome || m.SelectedLevel() != nil {
		t.Error("logout must reset navigation")
	}
	if gw.active != "" {
		t.Errorf("active pointer = %q, want cleared", gw.active)
	}
	if _, ok := gw.states["ana@ejemplo.com"]; !ok {
		t.Error("logout must not delete the stored snapshot")
	}
}

func TestSwitchProfile(t *testing.T) {
	m, _ := registeredMachine(t, catalog.PlanFamiliar)
	m.CreateProfile("Luis")

	profiles := m.Profiles()
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}

	m.NavigateToDashboard()
	m.SwitchProfile(profiles[1].ID)
	if active := m.ActiveProfile(); active == nil || active.Name != "Luis" {
		t.Errorf("active profile = %+v", active)
	}
	if m.View() != ViewHome {
		t.Errorf("expected home after switching, got %v", m.View())
	}
}

func TestSwitchProfileForeignRejected(t *testing.T) {
	m, _ := registeredMachine(t, catalog.PlanFamiliar)
	before := m.ActiveProfile().ID

	m.SwitchProfile("profile-de-otra-cuenta")
	if m.ActiveProfile().ID != before {
		t.Error("a foreign profile id must be rejected silently")
	}
}

func TestCreateProfileAvatarAllocation(t *testing.T) {
	m, _ := registeredMachine(t, catalog.PlanInstitucion)

	// First profile took the first palette color; the next seven fill
	// the rest of the palette in order.
	for i := 1; i < len(AvatarPalette); i++ {
		m.CreateProfile("P")
	}
	profiles := m.Profiles()
	for i, p := range profiles {
		if p.AvatarColor != AvatarPalette[i] {
			t.Errorf("profile %d avatar = %q, want %q", i, p.AvatarColor, AvatarPalette[i])
		}
	}

	// Palette exhausted: allocation wraps by profile count.
	m.CreateProfile("P")
	wrapped := m.Profiles()[len(AvatarPalette)]
	if wrapped.AvatarColor != AvatarPalette[0] {
		t.Errorf("wrapped avatar = %q, want %q", wrapped.AvatarColor, AvatarPalette[0])
	}
}

func TestCreateProfileDoesNotEnforcePlanCap(t *testing.T) {
	// Plan tiers gate the add-profile affordance in the UI, not the
	// transition itself.
	m, _ := registeredMachine(t, catalog.PlanIndividual)
	m.CreateProfile("Extra")
	if len(m.Profiles()) != 2 {
		t.Errorf("expected 2 profiles, got %d", len(m.Profiles()))
	}
}

func TestCanAddProfile(t *testing.T) {
	tests := []struct {
		plan catalog.PlanTier
		want bool
	}{
		{catalog.PlanIndividual, false},
		{catalog.PlanFamiliar, true},
		{catalog.PlanInstitucion, true},
	}

	for _, tt := range tests {
		m, _ := registeredMachine(t, tt.plan)
		if got := m.CanAddProfile(); got != tt.want {
			t.Errorf("CanAddProfile() with %q = %v, want %v", tt.plan, got, tt.want)
		}
	}

	cold := NewMachine(nil, quietLogger())
	if cold.CanAddProfile() {
		t.Error("no account, no add-profile affordance")
	}
}

func TestUpdateInstitutionLogo(t *testing.T) {
	m, gw := registeredMachine(t, catalog.PlanInstitucion)

	m.UpdateInstitutionLogo("Colegio San Martín")
	if m.InstitutionLogo() != "Colegio San Martín" {
		t.Errorf("logo = %q", m.InstitutionLogo())
	}
	if gw.states["ana@ejemplo.com"].InstitutionLogo != "Colegio San Martín" {
		t.Error("logo must be persisted")
	}

	m.UpdateInstitutionLogo("")
	if m.InstitutionLogo() != "" {
		t.Error("empty value must clear the logo")
	}
}

func TestPersistFailureKeepsSessionState(t *testing.T) {
	m, gw := registeredMachine(t, catalog.PlanIndividual)
	gw.failing = true

	m.CompleteLesson("ini-1")
	p := m.ActiveProfile()
	if p.XP != XPPerLesson || !p.HasCompleted("ini-1") {
		t.Error("storage failures must not roll back in-memory progress")
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@ejemplo.com", true},
		{"a@b.co", true},
		{"sin-arroba.com", false},
		{"sin@punto", false},
		{"espacios en@medio.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
