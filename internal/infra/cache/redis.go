package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// カタログ読み取りのキャッシュ。Redis未設定なら全部no-opになる
var (
	client  *redis.Client
	prefix  string
	enabled bool
)

// Init はRedisクライアントを初期化する。addrが空ならキャッシュ無効
func Init(addr string, password string, db int, keyPrefix string) {
	if addr == "" {
		enabled = false
		return
	}
	if keyPrefix == "" {
		keyPrefix = "loja"
	}
	prefix = keyPrefix

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	enabled = true
}

func Enabled() bool {
	return enabled && client != nil
}

// GetJSON はJSONキャッシュを取得する。ヒットしなければ(false, nil)
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !Enabled() {
		return false, nil
	}
	val, err := client.Get(ctx, buildKey(key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON はJSONキャッシュを書き込む
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !Enabled() {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, buildKey(key), payload, ttl).Err()
}

func buildKey(key string) string {
	return prefix + ":" + key
}
