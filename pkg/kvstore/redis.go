package kvstore

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Albiehao/kanban/config"
)

const redisKeyPrefix = "kanban:kv:"

// RedisStore Redis 持久化的键值存储
// 用于多实例共享本地快照的部署形态；单机默认使用 FileStore
type RedisStore struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewRedisStore 创建 Redis 连接并执行 Ping 健康检查
func NewRedisStore(cfg *config.RedisConfig, logger *zap.Logger) (*RedisStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 存储连接成功", zap.String("addr", cfg.Addr))

	return &RedisStore{rdb: rdb, logger: logger}, nil
}

func (s *RedisStore) Get(key string) (string, bool) {
	ctx, cancel := s.opContext()
	defer cancel()

	v, err := s.rdb.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if err != goredis.Nil {
			s.logger.Warn("Redis 读取失败", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return v, true
}

func (s *RedisStore) Set(key, value string) error {
	ctx, cancel := s.opContext()
	defer cancel()
	return s.rdb.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	ctx, cancel := s.opContext()
	defer cancel()
	return s.rdb.Del(ctx, redisKeyPrefix+key).Err()
}

// Close 关闭 Redis 连接
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisStore) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 3*time.Second)
}
