package state

import (
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/codegenio/codegenio/internal/catalog"
	"github.com/codegenio/codegenio/internal/placement"
)

// XPPerLesson is awarded once per completed lesson.
const XPPerLesson = 100

// AvatarPalette is the fixed set of avatar color tags, in allocation
// order.
var AvatarPalette = []string{
	"azul", "verde", "rojo", "amarillo", "morado", "índigo", "rosa", "turquesa",
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail reports whether s looks like an email address. The check
// is intentionally shallow: there is no real authentication behind it.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Machine holds the in-memory application state and applies user
// actions to it. It is not safe for concurrent use; the UI processes
// one action at a time.
type Machine struct {
	view             View
	selectedLevelID  string
	selectedLessonID string
	app              AppState

	gw     Gateway
	logger *log.Logger
}

// NewMachine creates a machine in the home view. The gateway may be
// nil, in which case the session is purely in-memory.
func NewMachine(gw Gateway, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.Default()
	}
	return &Machine{view: ViewHome, gw: gw, logger: logger}
}

// Restore loads the active account's snapshot from the gateway, if any.
// Any failure is treated as a cold start.
func (m *Machine) Restore() {
	if m.gw == nil {
		return
	}
	s, err := m.gw.LoadActiveAccountState()
	if err != nil {
		m.logger.Printf("state: restore failed, starting cold: %v", err)
		return
	}
	if s != nil {
		m.app = *s
	}
}

// View returns the current view tag.
func (m *Machine) View() View { return m.view }

// Account returns the authenticated account, or nil.
func (m *Machine) Account() *Account { return m.app.Account }

// Profiles returns the account's profiles.
func (m *Machine) Profiles() []Profile { return m.app.Profiles }

// InstitutionLogo returns the stored logo data, or "".
func (m *Machine) InstitutionLogo() string { return m.app.InstitutionLogo }

// ActiveProfile returns the profile selected for progress tracking,
// or nil when none is active.
func (m *Machine) ActiveProfile() *Profile {
	if m.app.Account == nil || m.app.ActiveProfileID == "" {
		return nil
	}
	for i := range m.app.Profiles {
		if m.app.Profiles[i].ID == m.app.ActiveProfileID {
			return &m.app.Profiles[i]
		}
	}
	return nil
}

// SelectedLevel returns the selected level, or nil.
func (m *Machine) SelectedLevel() *catalog.Level {
	if m.selectedLevelID == "" {
		return nil
	}
	return catalog.LevelByID(m.selectedLevelID)
}

// SelectedLesson returns the selected lesson, or nil.
func (m *Machine) SelectedLesson() *catalog.Lesson {
	if m.selectedLessonID == "" {
		return nil
	}
	l, _ := catalog.LessonByID(m.selectedLessonID)
	return l
}

// CanAddProfile reports whether the account's plan unlocks the
// add-profile action. This is a UI capability only: CreateProfile
// itself does not enforce a profile-count cap.
func (m *Machine) CanAddProfile() bool {
	if m.app.Account == nil {
		return false
	}
	return catalog.PlanTier(m.app.Account.Plan).AllowsMultipleProfiles()
}

// NavigateHome clears the level and lesson selection and shows home.
func (m *Machine) NavigateHome() {
	m.view = ViewHome
	m.selectedLevelID = ""
	m.selectedLessonID = ""
}

// NavigateToLogin shows the login view.
func (m *Machine) NavigateToLogin() { m.view = ViewLogin }

// NavigateToDashboard shows the dashboard for an authenticated
// account, redirecting to login otherwise.
func (m *Machine) NavigateToDashboard() {
	if m.app.Account == nil {
		m.view = ViewLogin
		return
	}
	m.view = ViewDashboard
}

// NavigateToCertificate shows the certificate view.
func (m *Machine) NavigateToCertificate() { m.view = ViewCertificate }

// StartTest opens the placement test, redirecting to login when no
// account is authenticated.
func (m *Machine) StartTest() {
	if m.app.Account == nil {
		m.view = ViewLogin
		return
	}
	m.view = ViewPlacementTest
	m.selectedLevelID = ""
	m.selectedLessonID = ""
}

// SelectLevel opens the lesson list for levelID, redirecting to login
// when no account is authenticated. Unknown level ids are ignored.
func (m *Machine) SelectLevel(levelID string) {
	if m.app.Account == nil {
		m.view = ViewLogin
		return
	}
	if catalog.LevelByID(levelID) == nil {
		return
	}
	m.selectedLevelID = levelID
	m.selectedLessonID = ""
	m.view = ViewLevelLessons
}

// SelectLesson opens a lesson of the currently selected level.
// Lessons outside the selected level are ignored.
func (m *Machine) SelectLesson(lessonID string) {
	lvl := m.SelectedLevel()
	if lvl == nil {
		return
	}
	for _, l := range lvl.Lessons {
		if l.ID == lessonID {
			m.selectedLessonID = lessonID
			m.view = ViewLessonContent
			return
		}
	}
}

// BackToLessons returns from a lesson to its level's lesson list.
func (m *Machine) BackToLessons() {
	m.selectedLessonID = ""
	m.view = ViewLevelLessons
}

// CompleteLesson marks lessonID complete for the active profile and
// awards XP. Re-completing an already completed lesson is a no-op.
func (m *Machine) CompleteLesson(lessonID string) {
	p := m.ActiveProfile()
	if p == nil || p.HasCompleted(lessonID) {
		return
	}
	p.CompletedLessons = append(p.CompletedLessons, lessonID)
	p.XP += XPPerLesson
	m.persist()
}

// CompleteTest maps a placement score to a recommended level and opens
// its lesson list with the level pre-selected.
func (m *Machine) CompleteTest(score int) *catalog.Level {
	lvl := catalog.LevelByID(placement.Recommend(score))
	m.selectedLevelID = lvl.ID
	m.selectedLessonID = ""
	m.view = ViewLevelLessons
	return lvl
}

// CheckEmail looks email up in storage. When the account exists its
// snapshot is loaded, the account becomes active, and the view returns
// home; the caller proceeds to registration otherwise.
func (m *Machine) CheckEmail(email string) (exists bool) {
	if !ValidEmail(email) || m.gw == nil {
		return false
	}
	s, err := m.gw.AccountState(email)
	if err != nil {
		m.logger.Printf("state: lookup %q: %v", email, err)
		return false
	}
	if s == nil {
		return false
	}
	m.app = *s
	if err := m.gw.SetActiveAccount(email); err != nil {
		m.logger.Printf("state: set active account: %v", err)
	}
	m.view = ViewHome
	return true
}

// Register creates the account and its first profile, makes the
// profile active, persists, and returns home. The caller is
// responsible for ensuring email is not already registered.
func (m *Machine) Register(name, email string, plan catalog.PlanTier) {
	acct := &Account{
		ID:    "account-" + uuid.NewString(),
		Name:  name,
		Email: email,
		Plan:  string(plan),
	}
	profile := Profile{
		ID:               "profile-" + uuid.NewString(),
		AccountID:        acct.ID,
		Name:             firstName(name),
		AvatarColor:      nextAvatarColor(nil),
		CompletedLessons: []string{},
		IsEducator:       plan == catalog.PlanInstitucion,
	}
	m.app = AppState{
		Account:         acct,
		Profiles:        []Profile{profile},
		ActiveProfileID: profile.ID,
	}
	if m.gw != nil {
		if err := m.gw.SetActiveAccount(email); err != nil {
			m.logger.Printf("state: set active account: %v", err)
		}
	}
	m.persist()
	m.view = ViewHome
}

// Logout clears the active-account pointer and resets to a cold state.
func (m *Machine) Logout() {
	if m.gw != nil {
		if err := m.gw.SetActiveAccount(""); err != nil {
			m.logger.Printf("state: clear active account: %v", err)
		}
	}
	m.app = AppState{}
	m.selectedLevelID = ""
	m.selectedLessonID = ""
	m.view = ViewHome
}

// SwitchProfile makes profileID the active profile and returns home.
// Profiles that do not belong to the authenticated account are
// rejected silently.
func (m *Machine) SwitchProfile(profileID string) {
	if m.app.Account == nil {
		return
	}
	for i := range m.app.Profiles {
		if m.app.Profiles[i].ID == profileID && m.app.Profiles[i].AccountID == m.app.Account.ID {
			m.app.ActiveProfileID = profileID
			m.view = ViewHome
			m.persist()
			return
		}
	}
}

// CreateProfile adds a profile under the authenticated account. The
// plan tier gates the UI affordance, not this transition.
func (m *Machine) CreateProfile(name string) {
	if m.app.Account == nil {
		return
	}
	m.app.Profiles = append(m.app.Profiles, Profile{
		ID:               "profile-" + uuid.NewString(),
		AccountID:        m.app.Account.ID,
		Name:             name,
		AvatarColor:      nextAvatarColor(m.app.Profiles),
		CompletedLessons: []string{},
	})
	m.persist()
}

// UpdateInstitutionLogo replaces the stored logo. An empty value
// clears it.
func (m *Machine) UpdateInstitutionLogo(logo string) {
	m.app.InstitutionLogo = logo
	m.persist()
}

// nextAvatarColor prefers a palette color unused by the sibling
// profiles; once the palette is exhausted it cycles by profile count.
func nextAvatarColor(siblings []Profile) string {
	used := make(map[string]bool, len(siblings))
	for _, p := range siblings {
		used[p.AvatarColor] = true
	}
	for _, c := range AvatarPalette {
		if !used[c] {
			return c
		}
	}
	return AvatarPalette[len(siblings)%len(AvatarPalette)]
}

func firstName(full string) string {
	if fields := strings.Fields(full); len(fields) > 0 {
		return fields[0]
	}
	return full
}

// persist writes the whole snapshot for the authenticated account.
// Failures are logged and swallowed; the in-memory state stays
// authoritative for the session.
func (m *Machine) persist() {
	if m.gw == nil || m.app.Account == nil {
		return
	}
	if err := m.gw.SaveAccountState(m.app.Account.Email, m.app); err != nil {
		m.logger.Printf("state: persist %q: %v", m.app.Account.Email, err)
	}
}
