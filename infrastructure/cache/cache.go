package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

// Cache cobre o que a API usa do Redis: cache de insights, deduplicação de
// webhooks e contadores de rate limit.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
	// Incr incrementa o contador da janela e devolve o valor atual.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	Close() error
}

type Redis struct {
	client *redis.Client
}

var _ Cache = (*Redis)(nil)

// New conecta no Redis quando habilitado; caso contrário devolve um cache nulo.
func New(cfg config.Redis) (Cache, error) {
	if !cfg.Enabled {
		logrus.Info("Redis desabilitado, usando cache nulo")
		return Nop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "erro ao conectar no Redis")
	}

	logrus.WithField("addr", cfg.Addr).Info("Conexão com Redis estabelecida com sucesso")
	return &Redis{client: client}, nil
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *Redis) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, key, value, ttl).Result()
}

func (r *Redis) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *Redis) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return incr.Val(), nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

// Nop é usado quando o Redis está desabilitado: nada é guardado.
type Nop struct{}

var _ Cache = Nop{}

func (Nop) Get(context.Context, string) ([]byte, bool, error)                  { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte, time.Duration) error           { return nil }
func (Nop) SetNX(context.Context, string, []byte, time.Duration) (bool, error) { return true, nil }
func (Nop) Del(context.Context, string) error                                  { return nil }
func (Nop) Incr(context.Context, string, time.Duration) (int64, error)         { return 0, nil }
func (Nop) Close() error                                                       { return nil }
