// Package state implements the application state machine: the current
// view, the selected level and lesson, and the per-account snapshot of
// profiles and progress. Transitions are plain methods on Machine;
// persistence happens as an explicit step after a mutating transition.
package state

// View is the closed set of screens the application can show.
type View int

const (
	ViewHome View = iota
	ViewLevelLessons
	ViewLessonContent
	ViewDashboard
	ViewPlacementTest
	ViewCertificate
	ViewLogin
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewLevelLessons:
		return "level_lessons"
	case ViewLessonContent:
		return "lesson_content"
	case ViewDashboard:
		return "dashboard"
	case ViewPlacementTest:
		return "placement_test"
	case ViewCertificate:
		return "certificate"
	case ViewLogin:
		return "login"
	default:
		return "unknown"
	}
}

// Account is one authenticated registrant, keyed by email.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Plan  string `json:"plan"`
}

// Profile is one learner identity under an account.
type Profile struct {
	ID               string   `json:"id"`
	AccountID        string   `json:"accountId"`
	Name             string   `json:"name"`
	AvatarColor      string   `json:"avatarColor"`
	XP               int      `json:"xp"`
	CompletedLessons []string `json:"completedLessons"`
	IsEducator       bool     `json:"isEducator,omitempty"`
}

// HasCompleted reports whether lessonID is in the completed set.
func (p *Profile) HasCompleted(lessonID string) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// AppState is the per-account persisted snapshot.
type AppState struct {
	Account         *Account  `json:"authenticatedUser"`
	Profiles        []Profile `json:"profiles"`
	ActiveProfileID string    `json:"activeProfileId"`
	InstitutionLogo string    `json:"institutionLogo,omitempty"`
}

// Gateway is the persistence boundary the machine writes through.
// Implementations must treat every call as best-effort: the machine
// logs and swallows failures, keeping the in-memory state
// authoritative for the session.
type Gateway interface {
	// LoadActiveAccountState resolves the active-account pointer to
	// its stored snapshot, or nil when there is none.
	LoadActiveAccountState() (*AppState, error)
	SaveAccountState(email string, s AppState) error
	// SetActiveAccount records email as the active-account pointer.
	// An empty email clears the pointer.
	SetActiveAccount(email string) error
	AccountExists(email string) (bool, error)
	// AccountState returns the stored snapshot for email, or nil when
	// absent or unreadable.
	AccountState(email string) (*AppState, error)
}
