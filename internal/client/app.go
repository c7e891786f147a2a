package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/internal/tui"
	"github.com/MKhiriev/team-lock/internal/workers"
	"github.com/MKhiriev/team-lock/models"
)

type App struct {
	auth    service.ClientAuthService
	ui      UI
	cache   Purger
	workers *workers.Workers
	logger  *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(auth service.ClientAuthService, ui UI, cache Purger, workers *workers.Workers, logger *logger.Logger) *App {
	return &App{
		auth:    auth,
		ui:      ui,
		cache:   cache,
		workers: workers,
		logger:  logger,
	}
}

// Run blocks until the user quits. Quitting from the login screen is not an
// error.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		a.workers.Run(ctx)
	}()
	defer func() {
		cancel()
		<-workersDone
	}()
	defer a.cache.Purge()

	for {
		sess, err := a.session(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.ui.MainLoop(ctx, sess)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.cache.Purge()
		if err = a.auth.Logout(ctx); err != nil {
			a.logger.Err(err).Msg("error logging out")
		}
		a.logger.Info().Str("login", sess.Login).Msg("logged out")
	}
}

// session restores the saved login or asks for a new one.
func (a *App) session(ctx context.Context) (models.Session, error) {
	sess, err := a.auth.Restore(ctx)
	if err == nil {
		a.logger.Info().Str("login", sess.Login).Msg("session restored")
		return sess, nil
	}
	if !errors.Is(err, service.ErrNotLoggedIn) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	sess, err = a.ui.LoginFlow(ctx)
	if err != nil {
		return models.Session{}, err
	}
	a.logger.Info().Str("login", sess.Login).Msg("logged in")
	return sess, nil
}
