package service

import (
	"context"
	"sync"
	"time"

	"github.com/oggyb/omni-notify/internal/cache"
	domain "github.com/oggyb/omni-notify/internal/domain/notification"
	"github.com/oggyb/omni-notify/internal/omni"
)

// fakeRepo keeps notifications in memory, in insertion order.
type fakeRepo struct {
	mu      sync.Mutex
	saved   []*domain.Notification
	updates map[string]domain.Status
	saveErr error
}

func newFakeRepo(pending ...*domain.Notification) *fakeRepo {
	return &fakeRepo{saved: pending, updates: map[string]domain.Status{}}
}

func (r *fakeRepo) Save(ctx context.Context, n *domain.Notification) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, n)
	return nil
}

func (r *fakeRepo) GetPending(ctx context.Context, limit int) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Notification
	for _, n := range r.saved {
		if n.Status == domain.StatusPending && len(out) < limit {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByStatus(ctx context.Context, status domain.Status, page, limit int) ([]*domain.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Notification
	for _, n := range r.saved {
		if n.Status == status {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

// UpdateStatus fails on a done context, like a real database call would.
func (r *fakeRepo) UpdateStatus(ctx context.Context, n *domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates[n.ID.String()] = n.Status
	return nil
}

func (r *fakeRepo) status(n *domain.Notification) domain.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates[n.ID.String()]
}

// fakeGateway answers SendText per instance name and counts calls.
type fakeGateway struct {
	mu        sync.Mutex
	sends     []omni.SendTextRequest
	listCalls int

	responses map[string]*omni.SendTextResponse
	errs      map[string]error
	instances []omni.InstanceInfo
	listErr   error
}

func (g *fakeGateway) SendText(ctx context.Context, instance string, req omni.SendTextRequest) (*omni.SendTextResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sends = append(g.sends, req)
	if err := g.errs[instance]; err != nil {
		return nil, err
	}
	if resp, ok := g.responses[instance]; ok {
		return resp, nil
	}
	id := "msg_" + instance
	return &omni.SendTextResponse{Success: true, MessageID: &id, Status: "sent"}, nil
}

func (g *fakeGateway) ListInstances(ctx context.Context) ([]omni.InstanceInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls++
	return g.instances, g.listErr
}

// fakeCache is an in-memory cache.Cache that ignores TTLs.
type fakeCache struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string]string{}} }

func (c *fakeCache) Ping(ctx context.Context) error { return nil }

func (c *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", c.getErr
	}
	v, ok := c.data[key]
	if !ok {
		return "", cache.ErrNotFound
	}
	return v, nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}
