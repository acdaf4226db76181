// Package redislog keeps an audit trail of creator writes in a capped Redis LIST.
package redislog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is one audit record saved into Redis as JSON.
type Entry struct {
	Level  string            `json:"level"`
	Event  string            `json:"event"`
	Time   string            `json:"time"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Logger pushes entries to a Redis LIST (e.g. "logs:creatorverse") and trims it
// to the newest max entries. A nil Logger, or one without a client, is a no-op.
type Logger struct {
	rdb       *redis.Client
	key       string
	max       int64
	retention time.Duration // expire for the list key; 0 keeps it forever
	now       func() time.Time
}

// Option customizes a Logger.
type Option func(*Logger)

// WithClock replaces time.Now, for deterministic entries in tests.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

func New(rdb *redis.Client, key string, max int64, retention time.Duration, opts ...Option) *Logger {
	l := &Logger{rdb: rdb, key: key, max: max, retention: retention, now: time.Now}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Key is the Redis list the logger writes to.
func (l *Logger) Key() string { return l.key }

// log does LPUSH, then LTRIM, then EXPIRE. Failures are dropped: the audit
// trail never fails a request.
func (l *Logger) log(ctx context.Context, level, event string, fields map[string]string) {
	if l == nil || l.rdb == nil {
		return
	}
	b, err := json.Marshal(Entry{
		Level:  level,
		Event:  event,
		Time:   l.now().UTC().Format(time.RFC3339),
		Fields: fields,
	})
	if err != nil {
		return
	}
	_ = l.rdb.LPush(ctx, l.key, b).Err()
	if l.max > 0 {
		_ = l.rdb.LTrim(ctx, l.key, 0, l.max-1).Err()
	}
	if l.retention > 0 {
		_ = l.rdb.Expire(ctx, l.key, l.retention).Err()
	}
}

func (l *Logger) Info(ctx context.Context, event string, fields map[string]string) {
	l.log(ctx, "info", event, fields)
}

func (l *Logger) Warn(ctx context.Context, event string, fields map[string]string) {
	l.log(ctx, "warn", event, fields)
}

func (l *Logger) Error(ctx context.Context, event string, fields map[string]string) {
	l.log(ctx, "error", event, fields)
}

// Recent returns up to n newest entries, newest first. Entries that fail to
// decode are skipped.
func (l *Logger) Recent(ctx context.Context, n int64) ([]Entry, error) {
	if l == nil || l.rdb == nil || n <= 0 {
		return nil, nil
	}
	raw, err := l.rdb.LRange(ctx, l.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(raw))
	for _, s := range raw {
		var e Entry
		if json.Unmarshal([]byte(s), &e) == nil {
			out = append(out, e)
		}
	}
	return out, nil
}
