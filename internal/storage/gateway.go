package storage

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/msultanalhakim/productivity-dashboard/internal/state"
)

const (
	// cacheTTL collapses the read bursts a rapid UI produces into one
	// fetch.
	cacheTTL = time.Second

	// opTimeout bounds every store call so a hung store surfaces an
	// error instead of leaving the caller in a saving state forever.
	opTimeout = 5 * time.Second
)

// Gateway owns the aggregate document: load with a short-lived cache,
// save by merging a patch over the current document and upserting it
// whole. Saves are serialized by the gateway's mutex, so two in-process
// writers cannot interleave partial documents (cross-process races
// remain last-write-wins).
type Gateway struct {
	repo *StateRepo
	now  func() time.Time
	log  *slog.Logger

	mu        sync.Mutex
	cached    *state.AppState
	fetchedAt time.Time
}

// NewGateway wires a gateway over db. The clock is injected so tests
// can drive the cache TTL.
func NewGateway(db *sql.DB, now func() time.Time) *Gateway {
	if now == nil {
		now = time.Now
	}
	return &Gateway{
		repo: NewStateRepo(db),
		now:  now,
		log:  slog.Default(),
	}
}

// Load returns the aggregate, served from cache while it is fresh. A
// store with no document yet yields the default state, not an error.
// Callers receive a clone; the cached copy is never handed out.
func (g *Gateway) Load(ctx context.Context) (*state.AppState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.loadLocked(ctx)
	if err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

func (g *Gateway) loadLocked(ctx context.Context) (*state.AppState, error) {
	now := g.now()
	if g.cached != nil && now.Sub(g.fetchedAt) < cacheTTL {
		return g.cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	data, _, ok, err := g.repo.Load(ctx)
	if err != nil {
		g.log.Error("state load failed", "err", err)
		return nil, err
	}

	var s *state.AppState
	if !ok {
		s = state.Default(now)
	} else {
		s, err = state.Decode(data, now)
		if err != nil {
			return nil, err
		}
	}

	g.cached = s
	g.fetchedAt = now
	return s, nil
}

// Save merges the patch over the current document and upserts the
// result. The cache is updated optimistically before the write; on
// failure the error propagates and the caller decides whether to
// re-fetch — there is no automatic rollback.
func (g *Gateway) Save(ctx context.Context, p state.Patch) error {
	if p.IsEmpty() {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	current, err := g.loadLocked(ctx)
	if err != nil {
		return err
	}

	merged := current.Clone()
	p.Apply(merged)
	g.cached = merged
	g.fetchedAt = g.now()

	data, err := merged.Encode()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := g.repo.Upsert(ctx, data, g.now()); err != nil {
		g.log.Error("state save failed", "err", err)
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// ClearCache drops the cached document so the next Load hits the store.
func (g *Gateway) ClearCache() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cached = nil
	g.fetchedAt = time.Time{}
}

// VerifyPassword checks the input against the stored password. A wrong
// password is a false, never an error. Stored hashes are bcrypt; a
// legacy plaintext value still verifies by constant-time equality
// until the next password change rewrites it as a hash.
func (g *Gateway) VerifyPassword(ctx context.Context, input string) (bool, error) {
	s, err := g.Load(ctx)
	if err != nil {
		return false, err
	}
	stored := s.Password
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(input)) == nil, nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(input)) == 1, nil
}

// UpdatePassword writes the new password as a bcrypt hash.
func (g *Gateway) UpdatePassword(ctx context.Context, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return fmt.Errorf("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	hashed := string(hash)
	return g.Save(ctx, state.Patch{Password: &hashed})
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
