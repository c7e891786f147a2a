package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/models"
)

// mainLoopModel switches between the team picker and one open team.
type mainLoopModel struct {
	ctx     context.Context
	teams   service.ClientTeamService
	newGate GateFactory
	session models.Session
	logger  *logger.Logger

	picker *TeamPickerModel
	team   *TeamModel

	logout bool
}

func newMainLoopModel(ctx context.Context, teams service.ClientTeamService, newGate GateFactory, sess models.Session, log *logger.Logger) mainLoopModel {
	return mainLoopModel{
		ctx:     ctx,
		teams:   teams,
		newGate: newGate,
		session: sess,
		logger:  log,
		picker:  NewTeamPickerModel(ctx, teams, sess.Login),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.logout) {
			m.logout = true
			return m, tea.Quit
		}
	case openTeamMsg:
		if msg.err != nil {
			m.picker.createFailed(msg.err)
			return m, nil
		}
		m.logger.Debug().Str("team", msg.slug).Bool("created", msg.created).Msg("opening team")
		m.picker.reset()
		m.team = NewTeamModel(m.ctx, m.teams, m.newGate(msg.slug), msg.slug)
		if msg.created {
			m.team.status = "Команда создана"
		}
		return m, m.team.Init()
	case backToPickerMsg:
		m.team = nil
		return m, m.picker.Init()
	}

	if m.team != nil {
		_, cmd := m.team.Update(msg)
		return m, cmd
	}
	_, cmd := m.picker.Update(msg)
	return m, cmd
}

func (m mainLoopModel) View() string {
	if m.team != nil {
		return m.team.View()
	}
	return m.picker.View()
}
