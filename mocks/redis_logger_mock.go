package mocks

import (
	"time"

	"github.com/Abdulwakil1/Creatorverse/utils/redislog"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

// AuditKey is the list key used by NewRedisLoggerWithMock.
const AuditKey = "logs:test"

// NewRedisLoggerWithMock constructs a real redislog.Logger over a mocked redis client
// with a frozen clock, so LPUSH payloads are predictable.
func NewRedisLoggerWithMock(now time.Time) (*redislog.Logger, *redis.Client, redismock.ClientMock) {
	rc, mock := redismock.NewClientMock()
	logger := redislog.New(rc, AuditKey, 100, 0, redislog.WithClock(func() time.Time { return now }))
	return logger, rc, mock
}
