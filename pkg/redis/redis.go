package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"planning-board/backend/config"
)

// Client Redis 客户端封装
// 当前用于大屏看板统计缓存；后续可扩展分布式锁等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
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

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 大屏统计缓存 ──
//
// 大屏页面轮询 /dashboard，统计查询涉及多表 COUNT，
// 用短 TTL 缓存吸收轮询压力。导入或增删看板后主动失效。

const dashboardStatsKey = "board:dashboard:stats"

// GetJSON 读取缓存并反序列化到 dest；缓存未命中返回 (false, nil)
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 序列化并写入缓存
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, ttl).Err()
}

// DashboardStatsKey 大屏统计缓存键
func DashboardStatsKey() string { return dashboardStatsKey }

// InvalidateDashboard 使大屏统计缓存失效
func (c *Client) InvalidateDashboard(ctx context.Context) error {
	return c.rdb.Del(ctx, dashboardStatsKey).Err()
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
