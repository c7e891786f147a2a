package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/team-lock/internal/adapter"
	"github.com/MKhiriev/team-lock/internal/gate"
	"github.com/MKhiriev/team-lock/internal/lock"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/mock"
	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/internal/session"
	"github.com/MKhiriev/team-lock/internal/store"
	"github.com/MKhiriev/team-lock/models"
)

const (
	testSlug     = "alpha"
	testTeamID   = "0195f0e8-team-alpha"
	testPassword = "correct horse"
)

// runCmd выполняет команду и раскрывает tea.BatchMsg.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("message %T not produced", zero)
	return zero
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func lockedTeam(t *testing.T, enabled bool) models.Team {
	t.Helper()
	key, err := lock.GenerateTeamKey()
	require.NoError(t, err)
	cfg, err := lock.NewConfiguration(testPassword, key, lock.MinIterations)
	require.NoError(t, err)
	cfg.LockEnabled = enabled
	return models.Team{TeamID: testTeamID, TeamSlug: testSlug, Security: cfg}
}

// ---- RootModel ----

func TestRootModel_Navigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	root := NewRootModel(map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: NewLoginModel(context.Background(), auth),
	}, pageMenu, models.NewAppBuildInfo("1.0.0", "", ""))

	updated, _ := root.Update(NavigateTo{Page: pageLogin})
	r := updated.(RootModel)
	assert.IsType(t, &LoginModel{}, r.current)

	// неизвестная страница игнорируется
	updated, _ = r.Update(NavigateTo{Page: "nowhere"})
	assert.IsType(t, &LoginModel{}, updated.(RootModel).current)
}

func TestRootModel_BuildInfoOnlyOnMenu(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu, models.NewAppBuildInfo("1.2.3", "today", "abc"))

	updated, _ := root.Update(keyPress("v"))
	r := updated.(RootModel)
	require.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "1.2.3")

	updated, _ = r.Update(keyPress("esc"))
	assert.False(t, updated.(RootModel).showBuildInfo)
}

func TestRootModel_FinishesOnSession(t *testing.T) {
	sess := models.Session{Login: "alice", UserID: 7, Token: "token"}

	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{name: "login", msg: LoginResult{Username: "alice", Session: sess}},
		{name: "register", msg: RegisterResult{Username: "alice", Session: sess}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu, models.AppBuildInfo{})

			updated, cmd := root.Update(tt.msg)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Equal(t, sess, updated.(RootModel).session)
		})
	}
}

func TestRootModel_CtrlC(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu, models.AppBuildInfo{})

	updated, cmd := root.Update(keyPress("ctrl+c"))

	require.NotNil(t, cmd)
	assert.True(t, updated.(RootModel).quitByUser)
}

// ---- LoginModel / RegisterModel ----

func TestLoginModel_RequiresFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(ctrl))

	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Логин и пароль обязательны", m.errMsg)
}

func TestLoginModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	sess := models.Session{Login: "alice", UserID: 7, Token: "token"}
	auth.EXPECT().Login(gomock.Any(), models.User{Login: "alice", Password: "pw"}).Return(sess, nil)

	m := NewLoginModel(context.Background(), auth)
	m.form.inputs[0].SetValue("  alice ")
	m.form.inputs[1].SetValue("pw")

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	result := findMsg[LoginResult](t, runCmd(cmd))
	assert.NoError(t, result.Err)
	assert.Equal(t, sess, result.Session)
}

func TestLoginModel_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockClientAuthService(ctrl))
	m.submitting = true

	m.Update(LoginResult{Err: service.ErrWrongPassword})

	assert.False(t, m.submitting)
	assert.Equal(t, "Неверный логин или пароль", m.errMsg)
}

func TestRegisterModel_PasswordsMustMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(ctrl))
	m.form.inputs[0].SetValue("alice")
	m.form.inputs[1].SetValue("one")
	m.form.inputs[2].SetValue("two")

	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Пароли не совпадают", m.errMsg)
}

func TestRegisterModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	auth.EXPECT().Register(gomock.Any(), models.User{Login: "alice", Password: "pw"}).
		Return(models.Session{}, store.ErrLoginAlreadyExists)

	m := NewRegisterModel(context.Background(), auth)
	m.form.inputs[0].SetValue("alice")
	m.form.inputs[1].SetValue("pw")
	m.form.inputs[2].SetValue("pw")

	_, cmd := m.Update(keyPress("enter"))
	result := findMsg[RegisterResult](t, runCmd(cmd))
	m.Update(result)

	assert.Equal(t, "Логин уже занят", m.errMsg)
}

// ---- main loop ----

func TestMainLoop_OpenCreateLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	teams := mock.NewMockClientTeamService(ctrl)
	teams.EXPECT().CreateTeam(gomock.Any(), "beta").Return(models.Team{}, store.ErrTeamAlreadyExists)

	var opened []string
	newGate := func(slug string) *gate.Gate {
		opened = append(opened, slug)
		return gate.New(slug, teams, session.NewNopCache())
	}
	m := newMainLoopModel(context.Background(), teams, newGate, models.Session{Login: "alice"}, logger.Nop())

	// создание уже существующей команды
	m.picker.form.inputs[0].SetValue("beta")
	updated, cmd := m.Update(keyPress("ctrl+n"))
	m = updated.(mainLoopModel)
	open := findMsg[openTeamMsg](t, runCmd(cmd))
	updated, _ = m.Update(open)
	m = updated.(mainLoopModel)
	assert.Nil(t, m.team)
	assert.Equal(t, "team already exists", m.picker.errMsg)

	// открытие команды
	updated, _ = m.Update(openTeamMsg{slug: testSlug})
	m = updated.(mainLoopModel)
	require.NotNil(t, m.team)
	assert.Equal(t, []string{testSlug}, opened)

	updated, _ = m.Update(backToPickerMsg{})
	m = updated.(mainLoopModel)
	assert.Nil(t, m.team)

	updated, cmd = m.Update(keyPress("ctrl+l"))
	require.NotNil(t, cmd)
	assert.True(t, updated.(mainLoopModel).logout)
}

// ---- TeamModel ----

func newTestTeamModel(t *testing.T, team models.Team, cache session.Cache) (*TeamModel, *mock.MockClientTeamService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mock.NewMockConfigSource(ctrl)
	source.EXPECT().TeamSecurity(gomock.Any(), team.TeamSlug).Return(team, nil).AnyTimes()
	teams := mock.NewMockClientTeamService(ctrl)

	g := gate.New(team.TeamSlug, source, cache, gate.WithKeyRequired())
	return NewTeamModel(context.Background(), teams, g, team.TeamSlug), teams
}

func loadTeam(t *testing.T, m *TeamModel) {
	t.Helper()
	m.Update(findMsg[gateMsg](t, runCmd(m.Init())))
}

func TestTeamModel_LockedTeamPrompts(t *testing.T) {
	cache := session.NewMemoryCache()
	m, _ := newTestTeamModel(t, lockedTeam(t, true), cache)

	loadTeam(t, m)
	require.Equal(t, gate.PhaseAwaitingPassword, m.state.Phase)
	assert.Contains(t, m.View(), "Команда защищена паролем")

	// неверный пароль
	m.password.SetValue("wrong guess")
	_, cmd := m.Update(keyPress("enter"))
	m.Update(findMsg[gateMsg](t, runCmd(cmd)))
	assert.Equal(t, gate.PhaseAwaitingPassword, m.state.Phase)
	assert.Equal(t, gate.MsgIncorrectPassword, m.state.Message)
	assert.Empty(t, m.password.Value())

	// верный пароль
	m.password.SetValue(testPassword)
	_, cmd = m.Update(keyPress("enter"))
	m.Update(findMsg[gateMsg](t, runCmd(cmd)))
	require.Equal(t, gate.PhaseUnlocked, m.state.Phase)
	assert.NotEmpty(t, m.fingerprint)
	assert.Contains(t, m.View(), m.fingerprint)

	remembered, ok := cache.Recall(testTeamID)
	assert.True(t, ok)
	assert.Equal(t, testPassword, remembered)
}

func TestTeamModel_UnlockedTeamNoPrompt(t *testing.T) {
	m, _ := newTestTeamModel(t, lockedTeam(t, false), session.NewNopCache())

	loadTeam(t, m)

	assert.Equal(t, gate.PhaseUnlocked, m.state.Phase)
	assert.Empty(t, m.fingerprint)
	assert.Contains(t, m.View(), "Содержимое команды доступно")
}

func TestTeamModel_Toggle(t *testing.T) {
	team := lockedTeam(t, false)
	m, teams := newTestTeamModel(t, team, session.NewNopCache())
	loadTeam(t, m)

	teams.EXPECT().SetLockEnabled(gomock.Any(), testSlug, true).Return(team, nil)

	_, cmd := m.Update(keyPress("t"))
	require.True(t, m.busy)
	updated := findMsg[teamUpdatedMsg](t, runCmd(cmd))
	require.NoError(t, updated.err)
	assert.Equal(t, "Замок включён", updated.status)
}

func TestTeamModel_ToggleForbidden(t *testing.T) {
	m, _ := newTestTeamModel(t, lockedTeam(t, false), session.NewNopCache())
	loadTeam(t, m)

	m.Update(teamUpdatedMsg{err: fmt.Errorf("%w: nope", service.ErrNotTeamOwner), fallback: msgSaveTeamFailed})

	assert.False(t, m.busy)
	assert.Equal(t, "only the team owner can change team security", m.errMsg)
}

func TestTeamModel_SetupRejectedWhenConfigured(t *testing.T) {
	m, _ := newTestTeamModel(t, lockedTeam(t, false), session.NewNopCache())
	loadTeam(t, m)

	_, cmd := m.Update(keyPress("s"))

	assert.Nil(t, cmd)
	assert.Equal(t, modeGate, m.mode)
	assert.Equal(t, "team lock is already set up", m.errMsg)
}

func TestTeamModel_SetupLock(t *testing.T) {
	team := models.Team{TeamID: testTeamID, TeamSlug: testSlug, Security: lock.NormalizeConfiguration(models.LockConfiguration{})}
	m, teams := newTestTeamModel(t, team, session.NewNopCache())
	loadTeam(t, m)
	require.Equal(t, gate.PhaseUnlocked, m.state.Phase)

	m.Update(keyPress("s"))
	require.Equal(t, modeSetup, m.mode)

	m.form.inputs[0].SetValue(testPassword)
	m.form.inputs[1].SetValue("другой")
	m.Update(keyPress("enter"))
	assert.Equal(t, "Пароли не совпадают", m.errMsg)

	teams.EXPECT().SetupLock(gomock.Any(), testSlug, testPassword).Return(team, "ab:cd", nil)
	m.form.inputs[1].SetValue(testPassword)
	_, cmd := m.Update(keyPress("enter"))
	updated := findMsg[teamUpdatedMsg](t, runCmd(cmd))
	assert.Equal(t, "ab:cd", updated.fingerprint)
}

func TestTeamModel_ChangePasswordStale(t *testing.T) {
	m, teams := newTestTeamModel(t, lockedTeam(t, false), session.NewNopCache())
	loadTeam(t, m)

	m.Update(keyPress("p"))
	require.Equal(t, modeChangePassword, m.mode)
	m.form.inputs[0].SetValue(testPassword)
	m.form.inputs[1].SetValue("new secret")
	m.form.inputs[2].SetValue("new secret")

	teams.EXPECT().ChangePassword(gomock.Any(), testSlug, testPassword, "new secret").
		Return(models.Team{}, store.ErrVerifierChanged)

	_, cmd := m.Update(keyPress("enter"))
	m.Update(findMsg[teamUpdatedMsg](t, runCmd(cmd)))

	assert.Equal(t, modeChangePassword, m.mode)
	assert.Equal(t, "team password was changed elsewhere, reload and try again", m.errMsg)
}

func TestTeamModel_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockConfigSource(ctrl)
	source.EXPECT().TeamSecurity(gomock.Any(), testSlug).Return(models.Team{}, adapter.ErrInternalServerError)

	m := NewTeamModel(context.Background(), mock.NewMockClientTeamService(ctrl), gate.New(testSlug, source, nil), testSlug)
	loadTeam(t, m)

	assert.Equal(t, gate.PhaseError, m.state.Phase)
	assert.Contains(t, m.View(), gate.MsgLoadFailed)
}

// ---- errors ----

func TestTeamErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: service.ErrLockNotConfigured, want: "team lock is not set up"},
		{err: fmt.Errorf("wrap: %w", store.ErrTeamNotFound), want: "team not found"},
		{err: lock.ErrWrongPassword, want: gate.MsgIncorrectPassword},
		{err: service.ErrTokenIsExpiredOrInvalid, want: "session expired, log in again"},
		{err: errors.New("dial tcp: connection refused"), want: msgSaveTeamFailed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, teamErrorMessage(tt.err, msgSaveTeamFailed))
	}
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Equal(t, "", humanizeServerUnavailableError(nil))
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", humanizeServerUnavailableError(errors.New("dial tcp 127.0.0.1:8080: connection refused")))
	assert.Equal(t, "boom", humanizeServerUnavailableError(errors.New("boom")))
}
