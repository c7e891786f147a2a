// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/awnumar/memguard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/team-lock/internal/gate"
	"github.com/MKhiriev/team-lock/internal/lock"
	"github.com/MKhiriev/team-lock/internal/service"
)

type teamMode int

const (
	modeGate teamMode = iota
	modeSetup
	modeChangePassword
)

const statusTTL = 3 * time.Second

// TeamModel is the screen of one team. The unlock gate decides whether the
// content is shown; once unlocked the owner can manage the lock from here.
//
// Gate calls run the KDF, so they always go through a tea.Cmd.
type TeamModel struct {
	ctx   context.Context
	teams service.ClientTeamService
	gate  *gate.Gate
	slug  string

	state       gate.State
	fingerprint string

	spinner  spinner.Model
	password textinput.Model
	form     *form
	mode     teamMode
	busy     bool
	status   string
	errMsg   string
}

func NewTeamModel(ctx context.Context, teams service.ClientTeamService, g *gate.Gate, slug string) *TeamModel {
	pw := textinput.New()
	pw.Placeholder = "team password"
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '*'
	pw.CharLimit = 256
	pw.Width = 40
	pw.Focus()

	return &TeamModel{
		ctx:      ctx,
		teams:    teams,
		gate:     g,
		slug:     slug,
		state:    gate.NewState(slug, false),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		password: pw,
		busy:     true,
	}
}

func (m *TeamModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *TeamModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case gateMsg:
		m.busy = false
		m.state = msg.state
		m.fingerprint = keyFingerprint(msg.state.TeamKey)
		if msg.state.Phase == gate.PhaseAwaitingPassword {
			m.password.SetValue("")
			m.password.Focus()
		}
		return m, nil

	case teamUpdatedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = teamErrorMessage(msg.err, msg.fallback)
			return m, nil
		}
		m.mode = modeGate
		m.form = nil
		m.errMsg = ""
		m.status = msg.status
		if msg.fingerprint != "" {
			m.status += ", отпечаток ключа " + msg.fingerprint
		}
		// перезагружаем состояние замка с сервера
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(), clearStatusAfter(statusTTL*2))

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = "Отпечаток скопирован"
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeGate {
			return m.updateForm(msg)
		}
		return m.updateGate(msg)
	}

	if m.mode != modeGate && m.form != nil {
		return m, m.form.update(msg)
	}
	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

func (m *TeamModel) updateGate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		return m, func() tea.Msg { return backToPickerMsg{} }
	}
	if m.busy {
		return m, nil
	}

	switch m.state.Phase {
	case gate.PhaseAwaitingPassword:
		if key.Matches(msg, keys.enter) {
			password := m.password.Value()
			m.password.SetValue("")
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.cmdSubmit(password))
		}
		var cmd tea.Cmd
		m.password, cmd = m.password.Update(msg)
		return m, cmd

	case gate.PhaseError:
		if key.Matches(msg, keys.reload) {
			return m.reload()
		}

	case gate.PhaseUnlocked:
		m.errMsg = ""
		security := m.state.Team.Security
		switch {
		case key.Matches(msg, keys.reload):
			return m.reload()
		case key.Matches(msg, keys.toggle):
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.cmdToggle(!security.LockEnabled))
		case key.Matches(msg, keys.setup):
			if security.HasVerifier() {
				m.errMsg = teamErrorMessage(service.ErrLockAlreadyConfigured, "")
				return m, nil
			}
			m.openForm(modeSetup,
				formField{label: "Пароль", secret: true},
				formField{label: "Повтор пароля", secret: true},
			)
			return m, textinput.Blink
		case key.Matches(msg, keys.change):
			if !security.IsConfigured() {
				m.errMsg = teamErrorMessage(service.ErrLockNotConfigured, "")
				return m, nil
			}
			m.openForm(modeChangePassword,
				formField{label: "Текущий пароль", secret: true},
				formField{label: "Новый пароль", secret: true},
				formField{label: "Повтор пароля", secret: true},
			)
			return m, textinput.Blink
		case key.Matches(msg, keys.copy):
			if m.fingerprint == "" {
				m.errMsg = "Ключ команды недоступен"
				return m, nil
			}
			return m, cmdCopy(m.fingerprint)
		}
	}

	return m, nil
}

func (m *TeamModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeGate
		m.form = nil
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		return m.submitForm()
	}
	return m, m.form.update(msg)
}

func (m *TeamModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSetup:
		pass, repeat := m.form.value(0), m.form.value(1)
		if pass == "" {
			m.errMsg = gate.MsgPasswordRequired
			return m, nil
		}
		if pass != repeat {
			m.errMsg = "Пароли не совпадают"
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdSetup(pass))

	case modeChangePassword:
		current, next, repeat := m.form.value(0), m.form.value(1), m.form.value(2)
		if current == "" || next == "" {
			m.errMsg = gate.MsgPasswordRequired
			return m, nil
		}
		if next != repeat {
			m.errMsg = "Пароли не совпадают"
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdChangePassword(current, next))
	}
	return m, nil
}

func (m *TeamModel) openForm(mode teamMode, fields ...formField) {
	m.mode = mode
	m.form = newForm(fields...)
	m.errMsg = ""
	m.status = ""
}

func (m *TeamModel) reload() (tea.Model, tea.Cmd) {
	m.busy = true
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *TeamModel) View() string {
	var b strings.Builder

	switch {
	case m.mode == modeSetup:
		b.WriteString("Новый пароль команды. Ключ команды будет создан на этом устройстве.\n\n")
		b.WriteString(m.form.view())
	case m.mode == modeChangePassword:
		b.WriteString("Смена пароля команды. Ключ команды сохраняется.\n\n")
		b.WriteString(m.form.view())
	case m.busy || m.state.Phase == gate.PhaseLoading || m.state.Phase == gate.PhaseVerifying:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.busyLabel())
		b.WriteString("\n")
	case m.state.Phase == gate.PhaseAwaitingPassword:
		b.WriteString("Команда защищена паролем.\n\n")
		b.WriteString("Пароль │ [")
		b.WriteString(m.password.View())
		b.WriteString("]\n")
		writeError(&b, m.state.Message)
	case m.state.Phase == gate.PhaseError:
		writeError(&b, m.state.Message)
	case m.state.Phase == gate.PhaseUnlocked:
		m.writeTeam(&b)
	}

	if m.mode != modeGate && m.busy {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.busyLabel())
		b.WriteString("\n")
	}
	writeStatus(&b, m.status)
	writeError(&b, m.errMsg)

	return renderPage("КОМАНДА "+strings.ToUpper(fitText(m.slug, 32)), strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *TeamModel) writeTeam(b *strings.Builder) {
	team := m.state.Team
	security := team.Security

	b.WriteString("Содержимое команды доступно.\n\n")
	fmt.Fprintf(b, "ID             │ %s\n", team.TeamID)
	fmt.Fprintf(b, "Замок включён  │ %s\n", yesNo(security.LockEnabled))
	fmt.Fprintf(b, "Замок настроен │ %s\n", yesNo(security.HasVerifier()))
	if security.HasVerifier() {
		fmt.Fprintf(b, "Итерации KDF   │ %d\n", security.KDF.Iterations)
		fmt.Fprintf(b, "Алгоритм       │ %s\n", security.Encryption.Algorithm)
		fmt.Fprintf(b, "Версия ключа   │ %d\n", security.Encryption.TeamKeyVersion)
	}
	if m.fingerprint != "" {
		fmt.Fprintf(b, "Отпечаток      │ %s\n", m.fingerprint)
	} else {
		b.WriteString("Отпечаток      │ -\n")
	}
}

func (m *TeamModel) busyLabel() string {
	switch {
	case m.mode != modeGate:
		return "Сохранение..."
	case m.state.Phase == gate.PhaseVerifying || m.state.Phase == gate.PhaseAwaitingPassword:
		return "Проверка пароля..."
	default:
		return "Загрузка..."
	}
}

func (m *TeamModel) hotKeys() string {
	if m.mode != modeGate {
		return "esc: отмена │ tab: след. поле │ enter: сохранить"
	}
	switch m.state.Phase {
	case gate.PhaseAwaitingPassword:
		return "enter: разблокировать │ esc: к командам"
	case gate.PhaseError:
		return "r: повторить │ esc: к командам"
	case gate.PhaseUnlocked:
		return "t: вкл/выкл замок │ s: настроить │ p: сменить пароль │ c: копировать отпечаток │ r: обновить │ esc: к командам"
	}
	return "esc: к командам"
}

func (m *TeamModel) cmdLoad() tea.Cmd {
	ctx, g := m.ctx, m.gate
	return func() tea.Msg {
		return gateMsg{state: g.Load(ctx)}
	}
}

func (m *TeamModel) cmdSubmit(password string) tea.Cmd {
	ctx, g := m.ctx, m.gate
	return func() tea.Msg {
		return gateMsg{state: g.Submit(ctx, password)}
	}
}

func (m *TeamModel) cmdToggle(enabled bool) tea.Cmd {
	ctx, teams, slug := m.ctx, m.teams, m.slug
	return func() tea.Msg {
		_, err := teams.SetLockEnabled(ctx, slug, enabled)
		status := "Замок выключен"
		if enabled {
			status = "Замок включён"
		}
		return teamUpdatedMsg{status: status, fallback: msgSaveTeamFailed, err: err}
	}
}

func (m *TeamModel) cmdSetup(password string) tea.Cmd {
	ctx, teams, slug := m.ctx, m.teams, m.slug
	return func() tea.Msg {
		_, fingerprint, err := teams.SetupLock(ctx, slug, password)
		return teamUpdatedMsg{fingerprint: fingerprint, status: "Замок настроен", fallback: msgSaveTeamFailed, err: err}
	}
}

func (m *TeamModel) cmdChangePassword(current, next string) tea.Cmd {
	ctx, teams, slug := m.ctx, m.teams, m.slug
	return func() tea.Msg {
		_, err := teams.ChangePassword(ctx, slug, current, next)
		return teamUpdatedMsg{status: "Пароль команды изменён", fallback: msgSaveTeamFailed, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// keyFingerprint opens the enclave just long enough to hash the key.
func keyFingerprint(key *memguard.Enclave) string {
	if key == nil {
		return ""
	}
	buf, err := key.Open()
	if err != nil {
		return ""
	}
	defer buf.Destroy()
	return lock.Fingerprint(buf.Bytes())
}
