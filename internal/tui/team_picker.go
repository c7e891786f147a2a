package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/team-lock/internal/service"
)

// TeamPickerModel asks for a team slug and opens or creates the team.
type TeamPickerModel struct {
	ctx   context.Context
	teams service.ClientTeamService
	login string

	form       *form
	submitting bool
	status     string
	errMsg     string
}

func NewTeamPickerModel(ctx context.Context, teams service.ClientTeamService, login string) *TeamPickerModel {
	return &TeamPickerModel{
		ctx:   ctx,
		teams: teams,
		login: login,
		form:  newForm(formField{label: "Команда", limit: 64}),
	}
}

func (m *TeamPickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *TeamPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.create):
			if m.submitting {
				return m, nil
			}
			slug := strings.TrimSpace(m.form.value(0))
			if slug == "" {
				m.errMsg = "Укажите команду"
				return m, nil
			}
			m.errMsg = ""
			m.status = ""
			if key.Matches(keyMsg, keys.create) {
				m.submitting = true
				return m, m.cmdCreate(slug)
			}
			return m, func() tea.Msg { return openTeamMsg{slug: slug} }
		}
	}

	return m, m.form.update(msg)
}

// createFailed is called by the main loop when team creation failed.
func (m *TeamPickerModel) createFailed(err error) {
	m.submitting = false
	m.errMsg = teamErrorMessage(err, msgSaveTeamFailed)
}

func (m *TeamPickerModel) reset() {
	m.submitting = false
	m.form.reset()
}

func (m *TeamPickerModel) View() string {
	var b strings.Builder
	if m.login != "" {
		b.WriteString("Пользователь: ")
		b.WriteString(m.login)
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.view())
	if m.submitting {
		b.WriteString("\n[Создание...]\n")
	}
	writeStatus(&b, m.status)
	writeError(&b, m.errMsg)

	return renderPage("КОМАНДЫ", strings.TrimRight(b.String(), "\n"), "enter: открыть │ ctrl+n: создать │ ctrl+l: выйти из аккаунта")
}

func (m *TeamPickerModel) cmdCreate(slug string) tea.Cmd {
	ctx := m.ctx
	teams := m.teams

	return func() tea.Msg {
		team, err := teams.CreateTeam(ctx, slug)
		if err != nil {
			return openTeamMsg{slug: slug, err: err}
		}
		return openTeamMsg{slug: team.TeamSlug, created: true}
	}
}
