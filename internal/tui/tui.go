// Package tui is the terminal client: account screens, the team picker and
// the team screen that hosts the unlock prompt.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/team-lock/internal/gate"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/models"
)

var ErrUserQuit = errors.New("вышел из программы")

// GateFactory builds the unlock gate for one team.
type GateFactory func(slug string) *gate.Gate

type TUI struct {
	services  *service.ClientServices
	newGate   GateFactory
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, newGate GateFactory, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		newGate:   newGate,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// LoginFlow shows the account menu until the user logs in or registers.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the team screens for a logged-in user.
func (t *TUI) MainLoop(ctx context.Context, sess models.Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services.TeamService, t.newGate, sess, t.logger)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
