package store

import (
	"context"

	"github.com/MKhiriev/team-lock/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the client's login per server in the local
// sqlite file. Nothing but the bearer token and login is persisted.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, serverURL string) (models.Session, error)
	DeleteSession(ctx context.Context, serverURL string) error
}
