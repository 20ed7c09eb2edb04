// Package fakes holds in-memory implementations of the shared contracts for tests.
package fakes

import (
	"context"
	"sync"
	"time"

	"healthcare-service/internal/app/contracts"

	"github.com/goccy/go-json"
)

// RedisRepository returns Err from every call when it is set.
type RedisRepository struct {
	mu     sync.Mutex
	Values map[string]string
	Err    error
}

func NewRedisRepository() *RedisRepository {
	return &RedisRepository{Values: make(map[string]string)}
}

func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.Values, key)
	return nil
}

func (r *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.Values[key] = string(data)
	return nil
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	return r.Values[key], nil
}

func (r *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	if _, ok := r.Values[key]; ok {
		return false, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	r.Values[key] = string(data)
	return true, nil
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.Err
}

func (r *RedisRepository) Has(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.Values[key]
	return ok
}

type EventPublisher struct {
	mu     sync.Mutex
	Events []contracts.EntityEvent
	Err    error
}

func (p *EventPublisher) Publish(ctx context.Context, event contracts.EntityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, event)
	return nil
}

func (p *EventPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.Events))
	for i, event := range p.Events {
		types[i] = event.Type
	}
	return types
}
