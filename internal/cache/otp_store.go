package cache

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	apperrors "go-parking-management/pkg/app_errors"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// OTPTTL bounds how long a code stays valid after login.
	OTPTTL = 5 * time.Minute
	// MaxAttempts bounds wrong guesses before the code is burned.
	MaxAttempts = 5
)

type OTPStore interface {
	// Issue generates a 6-digit code for the email and stores it with a TTL,
	// replacing any previous code.
	Issue(ctx context.Context, email string) (string, error)
	// Verify checks the code atomically: the attempt counter and the
	// delete-on-match both happen inside one Lua script, so concurrent
	// guesses cannot exceed MaxAttempts or reuse a consumed code.
	Verify(ctx context.Context, email, code string) error
}

type RedisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) OTPStore {
	return &RedisOTPStore{
		client: client,
	}
}

func (s *RedisOTPStore) key(email string) string {
	return fmt.Sprintf("otp:%s", email)
}

func (s *RedisOTPStore) Issue(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("otp: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64())

	key := s.key(email)
	err = s.client.HSet(ctx, key, map[string]interface{}{
		"code":     code,
		"attempts": 0,
	}).Err()
	if err != nil {
		return "", err
	}
	if err := s.client.Expire(ctx, key, OTPTTL).Err(); err != nil {
		return "", err
	}

	return code, nil
}

func (s *RedisOTPStore) Verify(ctx context.Context, email, code string) error {
	script := `
		local key = KEYS[1]
		local submitted = ARGV[1]
		local max_attempts = tonumber(ARGV[2])

		local code = redis.call('HGET', key, 'code')
		if not code then
			return -1 -- expired or never issued
		end

		local attempts = tonumber(redis.call('HGET', key, 'attempts') or '0')
		if attempts >= max_attempts then
			redis.call('DEL', key)
			return -2 -- attempt budget exhausted
		end

		if code ~= submitted then
			redis.call('HINCRBY', key, 'attempts', 1)
			return -1
		end

		redis.call('DEL', key)
		return 1
	`

	result, err := s.client.Eval(ctx, script, []string{s.key(email)}, code, MaxAttempts).Result()
	if err != nil {
		return err
	}

	switch result.(int64) {
	case 1:
		return nil
	case -2:
		return apperrors.ErrTooManyOTPAttempts
	case -1:
		return apperrors.ErrInvalidOTP
	default:
		return errors.New("unexpected result")
	}
}
