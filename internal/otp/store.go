package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "otp:"

// Store keeps one live verification code per email, expiring with the TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Issue generates a fresh 6-digit code and stores it, replacing any code
// still live for the email.
func (s *Store) Issue(ctx context.Context, email string) (string, error) {
	code := newDigits(6)
	if err := s.rdb.Set(ctx, keyPrefix+email, code, s.ttl).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Verify checks the code and consumes it on success.
func (s *Store) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, keyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}

	s.rdb.Del(ctx, keyPrefix+email)
	return true, nil
}

func newDigits(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			panic(err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String()
}
