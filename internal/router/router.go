package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/codegenio/codegenio/internal/screen"
	"github.com/codegenio/codegenio/internal/state"
)

// Factory builds the screen for a given view.
type Factory func(v state.View) screen.Screen

// Router maps the application view to the active screen. The state
// machine owns which view is current; the router only materializes
// screens and forwards messages. A screen is rebuilt whenever the
// machine's view changes, so screens never carry stale state across
// navigations.
type Router struct {
	machine *state.Machine
	build   Factory
	view    state.View
	active  screen.Screen
}

// New creates a Router showing the machine's current view.
func New(m *state.Machine, build Factory) *Router {
	v := m.View()
	return &Router{
		machine: m,
		build:   build,
		view:    v,
		active:  build(v),
	}
}

// Active returns the current screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// CurrentView returns the view the router is showing.
func (r *Router) CurrentView() state.View {
	return r.view
}

// Init initializes the current screen.
func (r *Router) Init() tea.Cmd {
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

// Update forwards a message to the active screen, then re-syncs with
// the machine: if the screen's handling moved the machine to another
// view, the screen for that view is built and initialized.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return r.Sync()
	}

	updated, cmd := r.active.Update(msg)
	r.active = updated

	if sync := r.Sync(); sync != nil {
		return tea.Batch(cmd, sync)
	}
	return cmd
}

// Sync rebuilds the active screen if the machine's view has changed.
// Returns the new screen's Init command, or nil if nothing changed.
func (r *Router) Sync() tea.Cmd {
	v := r.machine.View()
	if v == r.view && r.active != nil {
		return nil
	}
	r.view = v
	r.active = r.build(v)
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
