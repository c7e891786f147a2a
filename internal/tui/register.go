package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/models"
)

// RegisterModel creates an account. The server logs the new user in right
// away, so a successful [RegisterResult] ends the account flow like a login.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       *form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			formField{label: "Логин", limit: 64},
			formField{label: "Пароль", secret: true},
			formField{label: "Повтор пароля", secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = accountErrorMessage(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			login := strings.TrimSpace(m.form.value(0))
			pass := m.form.value(1)
			repeat := m.form.value(2)
			if login == "" || pass == "" || repeat == "" {
				m.errMsg = "Все поля обязательны"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(login, pass)
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}
	writeError(&b, m.errMsg)

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(login, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		sess, err := auth.Register(ctx, models.User{Login: login, Password: pass})
		return RegisterResult{Username: login, Session: sess, Err: err}
	}
}
