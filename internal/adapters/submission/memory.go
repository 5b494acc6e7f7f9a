package submission

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"acaradashboard/internal/domain"
)

type entry struct {
	token   string
	expires time.Time
}

type memoryGuard struct {
	mu     sync.Mutex
	active map[string]entry
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryGuard returns a process-local SubmissionGuard, used when no Redis is configured.
func NewMemoryGuard(ttl time.Duration) domain.SubmissionGuard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryGuard{active: make(map[string]entry), ttl: ttl, now: time.Now}
}

func (g *memoryGuard) Begin(_ context.Context, userID string) (domain.ReleaseFunc, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	k := key(userID)
	now := g.now()
	if e, ok := g.active[k]; ok && now.Before(e.expires) {
		return nil, domain.ErrSubmissionInProgress
	}
	token := uuid.NewString()
	g.active[k] = entry{token: token, expires: now.Add(g.ttl)}
	return func(context.Context) error {
		g.mu.Lock()
		defer g.mu.Unlock()
		if e, ok := g.active[k]; ok && e.token == token {
			delete(g.active, k)
		}
		return nil
	}, nil
}

func (g *memoryGuard) State(_ context.Context, userID string) (domain.SubmissionState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if e, ok := g.active[key(userID)]; ok && g.now().Before(e.expires) {
		return domain.SubmissionSubmitting, nil
	}
	return domain.SubmissionIdle, nil
}
