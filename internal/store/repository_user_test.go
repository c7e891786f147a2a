package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test", "")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Login:        "john",
		Password:     "plain text is never written",
		PasswordHash: "$2a$10$hash",
		Name:         "John",
	}
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "login", "password_hash", "name", "created_at"}).
		AddRow(1, user.Login, user.PasswordHash, user.Name, now)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash, name)")).
		WithArgs(user.Login, user.PasswordHash, user.Name).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Login != user.Login {
		t.Errorf("expected login %s, got %s", user.Login, created.Login)
	}
	if created.Password != "" {
		t.Errorf("plain password must not be returned, got %q", created.Password)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, created.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_LoginAlreadyExists(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john", PasswordHash: "h"})
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedPgError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.SyntaxError))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john", PasswordHash: "h"})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("syntax error must not map to ErrLoginAlreadyExists")
	}
}

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "login", "password_hash", "name", "created_at"}).
		AddRow(7, "alice", "$2a$10$hash", "Alice", now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("alice").
		WillReturnRows(rows)

	found, err := repo.FindUserByLogin(context.Background(), models.User{Login: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 || found.PasswordHash != "$2a$10$hash" {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "password_hash", "name", "created_at"}))

	_, err := repo.FindUserByLogin(context.Background(), models.User{Login: "ghost"})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByLogin_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByLogin(context.Background(), models.User{Login: "alice"})
	if err == nil || errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected unexpected DB error, got %v", err)
	}
}
