package ban

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// LogEntry records one ban event.
type LogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int64     `json:"strikes"`
	Time    time.Time `json:"time"`
}

// Store keeps strike counters, active bans and the ban log.
type Store interface {
	IncrStrike(ctx context.Context, target string, window time.Duration) (int64, error)
	SetBan(ctx context.Context, target string, ttl time.Duration) error
	IsBanned(ctx context.Context, target string) (bool, error)
	AppendLog(ctx context.Context, entry LogEntry) error
	// DrainLog returns every logged entry and clears the log.
	DrainLog(ctx context.Context) ([]LogEntry, error)
}

const (
	DailyBanLogKey  = "ratelimit:banlog:daily"
	strikeKeyPrefix = "ratelimit:strikes:"
	bannedKeyPrefix = "ratelimit:banned:"
)

// RedisStore implements Store on Redis so bans are shared between instances.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) IncrStrike(ctx context.Context, target string, window time.Duration) (int64, error) {
	key := strikeKeyPrefix + target
	var incr *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (s *RedisStore) SetBan(ctx context.Context, target string, ttl time.Duration) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, bannedKeyPrefix+target, time.Now().Format(time.RFC3339), ttl)
		pipe.Del(ctx, strikeKeyPrefix+target)
		return nil
	})
	return err
}

func (s *RedisStore) IsBanned(ctx context.Context, target string) (bool, error) {
	n, err := s.rdb.Exists(ctx, bannedKeyPrefix+target).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) AppendLog(ctx context.Context, entry LogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, DailyBanLogKey, data).Err()
}

func (s *RedisStore) DrainLog(ctx context.Context) ([]LogEntry, error) {
	var lrange *redis.StringSliceCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, DailyBanLogKey, 0, -1)
		pipe.Del(ctx, DailyBanLogKey)
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]LogEntry, 0, len(lrange.Val()))
	for _, item := range lrange.Val() {
		var entry LogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

type expiring struct {
	count   int64
	expires time.Time
}

// MemoryStore implements Store in process memory, for single instances and tests.
type MemoryStore struct {
	mu      sync.Mutex
	strikes map[string]expiring
	bans    map[string]time.Time
	log     []LogEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		strikes: make(map[string]expiring),
		bans:    make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) IncrStrike(_ context.Context, target string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := s.strikes[target]
	if !e.expires.IsZero() && now.After(e.expires) {
		e = expiring{}
	}
	e.count++
	e.expires = now.Add(window)
	s.strikes[target] = e
	return e.count, nil
}

func (s *MemoryStore) SetBan(_ context.Context, target string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bans[target] = s.now().Add(ttl)
	delete(s.strikes, target)
	return nil
}

func (s *MemoryStore) IsBanned(_ context.Context, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.bans[target]
	if !ok {
		return false, nil
	}
	if s.now().After(until) {
		delete(s.bans, target)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) AppendLog(_ context.Context, entry LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log = append(s.log, entry)
	return nil
}

func (s *MemoryStore) DrainLog(_ context.Context) ([]LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.log
	s.log = nil
	return entries, nil
}
