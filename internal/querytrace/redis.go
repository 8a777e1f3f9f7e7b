package querytrace

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"opsmonitor/internal/telemetry"
)

// RedisHook implements redis.Hook. Register it with client.AddHook.
// The entity is the first ':'-separated segment of the command's key.
type RedisHook struct {
	rec QueryRecorder
}

var _ redis.Hook = (*RedisHook)(nil)

func NewRedisHook(rec QueryRecorder) *RedisHook {
	return &RedisHook{rec: rec}
}

func (h *RedisHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *RedisHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		if entity, op := ParseRedisCmd(cmd.Args()); classified(entity, op) {
			record(h.rec, start, entity, op)
		}
		return err
	}
}

// ProcessPipelineHook records one metric per pipeline, named after its first
// classified command. Pipelines with none (connection setup, MULTI/EXEC
// wrappers only) are not recorded.
func (h *RedisHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		for _, cmd := range cmds {
			if entity, op := ParseRedisCmd(cmd.Args()); classified(entity, op) {
				record(h.rec, start, entity, op)
				break
			}
		}
		return err
	}
}

// classified is false for commands that touch no data: PING, HELLO, CLIENT,
// AUTH, SELECT, MULTI, EXEC and the like.
func classified(entity, op string) bool {
	return entity != telemetry.OpUnknown || op != telemetry.OpUnknown
}

var redisOperations = map[string]string{
	"get":           telemetry.OpFind,
	"mget":          telemetry.OpFind,
	"exists":        telemetry.OpFind,
	"hget":          telemetry.OpFind,
	"hmget":         telemetry.OpFind,
	"hgetall":       telemetry.OpFind,
	"smembers":      telemetry.OpFind,
	"scard":         telemetry.OpFind,
	"zrange":        telemetry.OpFind,
	"zrangebyscore": telemetry.OpFind,
	"zcount":        telemetry.OpFind,
	"zcard":         telemetry.OpFind,
	"set":           telemetry.OpUpdate,
	"setex":         telemetry.OpUpdate,
	"hset":          telemetry.OpUpdate,
	"hmset":         telemetry.OpUpdate,
	"sadd":          telemetry.OpUpdate,
	"zadd":          telemetry.OpUpdate,
	"incr":          telemetry.OpUpdate,
	"expire":        telemetry.OpUpdate,
	"del":           telemetry.OpDelete,
	"unlink":        telemetry.OpDelete,
	"hdel":          telemetry.OpDelete,
	"srem":          telemetry.OpDelete,
	"zrem":          telemetry.OpDelete,
}

func ParseRedisCmd(args []any) (entity, operation string) {
	entity, operation = telemetry.OpUnknown, telemetry.OpUnknown
	if len(args) == 0 {
		return entity, operation
	}
	if op, ok := redisOperations[strings.ToLower(fmt.Sprint(args[0]))]; ok {
		operation = op
	}
	if len(args) > 1 {
		key := fmt.Sprint(args[1])
		if prefix, _, found := strings.Cut(key, ":"); found && prefix != "" {
			entity = prefix
		} else if key != "" && operation != telemetry.OpUnknown {
			entity = key
		}
	}
	return entity, operation
}
