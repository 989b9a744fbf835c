package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tripatlas/tripatlas-server/internal/domain"
	"github.com/tripatlas/tripatlas-server/internal/store"
	"github.com/tripatlas/tripatlas-server/internal/store/sqlite"
)

// newTestStore opens a throwaway sqlite store for service tests.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := sqlite.Open(dbPath, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func seedUser(t *testing.T, s store.Store, username, email string) *domain.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), &domain.User{Username: username, Email: email})
	require.NoError(t, err)
	return u
}

func seedCountry(t *testing.T, s store.Store, code, name string) *domain.Country {
	t.Helper()
	c, err := s.CreateCountry(context.Background(), &domain.Country{Code: code, Name: name})
	require.NoError(t, err)
	return c
}
