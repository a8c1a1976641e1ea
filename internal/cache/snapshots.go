package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Snapshots guarda respostas prontas do endpoint de polling da fila.
// Instância nil é válida e equivale a cache desligado; falhas de redis
// degradam para leitura direta do banco.
type Snapshots struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshots(addr, password string, db int, ttl time.Duration) *Snapshots {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Snapshots{client: client, ttl: ttl}
}

func (s *Snapshots) Ping(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.client.Ping(ctx).Err()
}

func (s *Snapshots) Get(ctx context.Context, key string) ([]byte, bool) {
	if s == nil {
		return nil, false
	}

	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil ou indisponível: segue para o banco
		return nil, false
	}
	return val, true
}

func (s *Snapshots) Set(ctx context.Context, key string, value []byte) {
	if s == nil {
		return
	}
	s.client.Set(ctx, key, value, s.ttl)
}

func (s *Snapshots) Invalidate(ctx context.Context, keys ...string) {
	if s == nil || len(keys) == 0 {
		return
	}
	s.client.Del(ctx, keys...)
}
