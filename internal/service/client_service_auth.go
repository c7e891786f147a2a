package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/team-lock/internal/adapter"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/store"
	"github.com/MKhiriev/team-lock/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	if user.Login == "" || user.Password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.persist(ctx, user.Login, token)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	if user.Login == "" || user.Password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.persist(ctx, user.Login, token)
}

func (a *clientAuthService) persist(ctx context.Context, login string, token models.Token) (models.Session, error) {
	sess := models.Session{
		ServerURL: a.adapter.BaseURL(),
		Login:     login,
		UserID:    token.UserID,
		Token:     token.SignedString,
		UpdatedAt: time.Now().UTC(),
	}

	a.adapter.SetToken(sess.Token)

	// сервер уже выдал токен, локальная ошибка не отменяет вход
	if err := a.sessions.SaveSession(ctx, sess); err != nil {
		a.logger.Err(err).Str("login", login).Msg("error saving local session")
	}

	return sess, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	sess, err := a.sessions.GetSession(ctx, a.adapter.BaseURL())
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}
	if !sess.Valid() {
		return models.Session{}, ErrNotLoggedIn
	}

	a.adapter.SetToken(sess.Token)
	a.logger.Debug().Str("login", sess.Login).Msg("session restored")
	return sess, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.sessions.DeleteSession(ctx, a.adapter.BaseURL()); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
