package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/chequeflow/chequeflow/internal/common"
	"github.com/chequeflow/chequeflow/internal/config"
	"github.com/chequeflow/chequeflow/internal/identity"
	"github.com/chequeflow/chequeflow/internal/model"
	"github.com/chequeflow/chequeflow/internal/service"
	"github.com/chequeflow/chequeflow/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/chequeflow/chequeflow.db"
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// closeStorage closes the store, logging rather than failing on error.
func closeStorage(store service.Storage) {
	if err := store.Close(); err != nil {
		common.LogError(err, "failed to close storage", nil)
	}
}

// requireUser returns the active user or an actionable error when no one
// is logged in.
func requireUser(ctx context.Context, store service.Storage) (*model.User, error) {
	var idp service.Identity = identity.NewManager(store)
	user, err := idp.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: run 'chequeflow login' first", common.ErrNotLoggedIn)
	}
	return user, nil
}

// warnToLog adapts slog to the services' warning sink.
func warnToLog(msg string, err error) {
	common.LogWarn(msg, common.Fields{"error": err})
}
