package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/team-lock/internal/gate"
	"github.com/MKhiriev/team-lock/models"
)

// NavigateTo switches RootModel to Page. A non-nil Payload is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type LoginResult struct {
	Username string
	Session  models.Session
	Err      error
}

type RegisterResult struct {
	Username string
	Session  models.Session
	Err      error
}

// openTeamMsg asks the main loop to open the team screen for slug. The
// gate fetches the team itself, so opening costs one request.
type openTeamMsg struct {
	slug    string
	created bool
	err     error
}

type backToPickerMsg struct{}

// gateMsg carries the gate snapshot after Load or Submit settled.
type gateMsg struct {
	state gate.State
}

// teamUpdatedMsg reports an owner action on the team security.
type teamUpdatedMsg struct {
	fingerprint string
	status      string
	fallback    string
	err         error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
