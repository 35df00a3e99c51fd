package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "Tracer-Study-Portal/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

const (
	MaxLoginAttempts   = 5
	LoginAttemptWindow = 15 * time.Minute
	SessionTTL         = TokenTTL
)

// ensureClient returns the shared Redis client managed by the database package.
// nil means development mode without Redis; every helper below degrades to a no-op.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// BlacklistToken เพิ่ม access token เข้า blacklist (ใช้ตอน logout)
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil || expiresIn <= 0 {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(Ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
// Returns false if Redis is not available (development mode - allow all tokens)
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	_, err := client.Get(Ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return true, nil
}

// SetSessionValue stores a value in the server-side session hash of sessionID.
func SetSessionValue(sessionID, field, value string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("session:%s", sessionID)
	pipe := client.TxPipeline()
	pipe.HSet(Ctx, key, field, value)
	pipe.Expire(Ctx, key, SessionTTL)
	if _, err := pipe.Exec(Ctx); err != nil {
		return fmt.Errorf("failed to store session value: %w", err)
	}
	return nil
}

// SessionValue reads a field of the server-side session hash.
func SessionValue(sessionID, field string) (string, bool) {
	client := ensureClient()
	if client == nil || sessionID == "" {
		return "", false
	}

	v, err := client.HGet(Ctx, fmt.Sprintf("session:%s", sessionID), field).Result()
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

// DeleteSession ลบ session hash ทั้งหมด (ใช้ตอน logout)
func DeleteSession(sessionID string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}
	return client.Del(Ctx, fmt.Sprintf("session:%s", sessionID)).Err()
}

// RegisterFailedLogin increments the failed-login counter of email.
func RegisterFailedLogin(email string) (int64, error) {
	client := ensureClient()
	if client == nil {
		return 0, nil
	}

	key := fmt.Sprintf("login_attempts:%s", email)
	n, err := client.Incr(Ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count login attempt: %w", err)
	}
	if n == 1 {
		client.Expire(Ctx, key, LoginAttemptWindow)
	}
	return n, nil
}

// LoginCooldown returns how long email must wait, zero when not limited.
func LoginCooldown(email string) time.Duration {
	client := ensureClient()
	if client == nil {
		return 0
	}

	key := fmt.Sprintf("login_attempts:%s", email)
	n, err := client.Get(Ctx, key).Int64()
	if err != nil || n < MaxLoginAttempts {
		return 0
	}
	ttl, err := client.TTL(Ctx, key).Result()
	if err != nil || ttl < 0 {
		return LoginAttemptWindow
	}
	return ttl
}

// ResetLoginAttempts ล้าง counter หลัง login สำเร็จ
func ResetLoginAttempts(email string) {
	if client := ensureClient(); client != nil {
		client.Del(Ctx, fmt.Sprintf("login_attempts:%s", email))
	}
}
