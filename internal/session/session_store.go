package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CookieName adalah cookie HttpOnly berisi session id console.
	CookieName = "hradmin_session"

	keyPrefix = "hradmin:session:"
)

// Store menyimpan bearer token milik sesi admin di Redis.
// Token hanya dibaca sekali per request oleh middleware dan diteruskan
// lewat context; tidak ada komponen lain yang menyentuh storage langsung.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// Save menyimpan token untuk session id baru.
func (s *Store) Save(ctx context.Context, sessionID, token string) error {
	return s.rdb.Set(ctx, keyPrefix+sessionID, token, s.ttl).Err()
}

// Token mengambil token sesi; kosong tanpa error kalau sesi tidak dikenal.
func (s *Store) Token(ctx context.Context, sessionID string) (string, error) {
	token, err := s.rdb.Get(ctx, keyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Clear menghapus sesi, dipakai saat logout dan saat upstream menjawab 401.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, keyPrefix+sessionID).Err()
}
