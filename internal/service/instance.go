package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/oggyb/omni-notify/internal/cache"
	"github.com/oggyb/omni-notify/internal/omni"
)

var instancesKey = cache.Instances.Key("all")

type InstanceService interface {
	// List returns gateway instances, from the cache unless refresh is set.
	List(ctx context.Context, refresh bool) ([]omni.InstanceInfo, error)
	// Healthy returns only instances the gateway reports as healthy.
	Healthy(ctx context.Context) ([]omni.InstanceInfo, error)
	// SendText sends one message straight through the gateway.
	SendText(ctx context.Context, instance string, req omni.SendTextRequest) (*omni.SendTextResponse, error)
}

type instanceService struct {
	gateway omni.Gateway
	cache   cache.Cache
	ttl     time.Duration
}

// NewInstanceService wraps the gateway with a short-lived instance list cache.
// A nil cache or non-positive ttl disables caching.
func NewInstanceService(gateway omni.Gateway, c cache.Cache, ttl time.Duration) InstanceService {
	return &instanceService{gateway: gateway, cache: c, ttl: ttl}
}

func (s *instanceService) cacheEnabled() bool {
	return s.cache != nil && s.ttl > 0
}

func (s *instanceService) List(ctx context.Context, refresh bool) ([]omni.InstanceInfo, error) {
	if s.cacheEnabled() && !refresh {
		if cached, ok := s.fromCache(ctx); ok {
			return cached, nil
		}
	}

	instances, err := s.gateway.ListInstances(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled() {
		if raw, err := json.Marshal(instances); err == nil {
			if err := s.cache.Set(ctx, instancesKey, string(raw), s.ttl); err != nil {
				log.Printf("[Instances] Failed to cache instance list: %v", err)
			}
		}
	}

	return instances, nil
}

func (s *instanceService) fromCache(ctx context.Context) ([]omni.InstanceInfo, bool) {
	raw, err := s.cache.Get(ctx, instancesKey)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			log.Printf("[Instances] Cache read failed, asking gateway: %v", err)
		}
		return nil, false
	}

	var instances []omni.InstanceInfo
	if err := json.Unmarshal([]byte(raw), &instances); err != nil {
		log.Printf("[Instances] Dropping unreadable cache entry: %v", err)
		_ = s.cache.Del(ctx, instancesKey)
		return nil, false
	}
	return instances, true
}

func (s *instanceService) Healthy(ctx context.Context) ([]omni.InstanceInfo, error) {
	all, err := s.List(ctx, false)
	if err != nil {
		return nil, err
	}

	healthy := make([]omni.InstanceInfo, 0, len(all))
	for _, in := range all {
		if in.IsHealthy {
			healthy = append(healthy, in)
		}
	}
	return healthy, nil
}

func (s *instanceService) SendText(ctx context.Context, instance string, req omni.SendTextRequest) (*omni.SendTextResponse, error) {
	return s.gateway.SendText(ctx, instance, req)
}
