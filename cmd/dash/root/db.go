package root

import (
	"context"
	"errors"
	"time"

	"github.com/msultanalhakim/productivity-dashboard/internal/engine"
	"github.com/msultanalhakim/productivity-dashboard/internal/storage"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return storage.DefaultDBPath()
}

func openService(ctx context.Context) (*engine.Service, *storage.SessionStore, func(), error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	gw := storage.NewGateway(db, time.Now)
	svc := engine.NewService(gw, time.Now)
	sess := storage.NewSessionStore(path, time.Now)
	return svc, sess, cleanup, nil
}

// requireUnlocked gates every data command behind the session. It also
// refreshes the idle timer, so activity keeps the dashboard open.
func requireUnlocked(sess *storage.SessionStore) error {
	if !sess.Valid() {
		return errors.New("dashboard is locked; run 'dash unlock' first")
	}
	return sess.Touch()
}
