package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"opsmonitor/internal/domain"
)

var ErrSessionCorrupt = errors.New("session record corrupt")

const (
	fieldUserID       = "user_id"
	fieldCreatedAt    = "created_at"
	fieldLastActivity = "last_activity"
)

// RedisSessionStore keeps each session in a hash "<prefix>:<id>" and indexes
// active sessions in the sorted set "<prefix>:active" scored by last activity
// (epoch ms).
type RedisSessionStore struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewRedisSessionStore(rdb redis.UniversalClient, prefix string) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, prefix: prefix}
}

func (s *RedisSessionStore) sessionKey(id string) string {
	return s.prefix + ":" + id
}

func (s *RedisSessionStore) activeKey() string {
	return s.prefix + ":active"
}

func (s *RedisSessionStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisSessionStore) Save(ctx context.Context, sess domain.Session) error {
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, s.sessionKey(sess.ID),
			fieldUserID, sess.UserID,
			fieldCreatedAt, sess.CreatedAt.UnixMilli(),
			fieldLastActivity, sess.LastActivity.UnixMilli(),
		)
		if sess.Active {
			p.ZAdd(ctx, s.activeKey(), redis.Z{
				Score:  float64(sess.LastActivity.UnixMilli()),
				Member: sess.ID,
			})
		} else {
			p.ZRem(ctx, s.activeKey(), sess.ID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// End marks a session inactive. The hash is kept for auditing.
func (s *RedisSessionStore) End(ctx context.Context, id string) error {
	if err := s.rdb.ZRem(ctx, s.activeKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) FindActiveSessionsSince(ctx context.Context, cutoff time.Time) ([]domain.Session, error) {
	ids, err := s.rdb.ZRangeByScore(ctx, s.activeKey(), &redis.ZRangeBy{
		Min: strconv.FormatInt(cutoff.UnixMilli(), 10),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query active sessions: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Session{}, nil
	}

	cmds := make([]*redis.SliceCmd, len(ids))
	_, err = s.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = p.HMGet(ctx, s.sessionKey(id), fieldUserID, fieldCreatedAt, fieldLastActivity)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	sessions := make([]domain.Session, 0, len(ids))
	for i, cmd := range cmds {
		vals := cmd.Val()
		if len(vals) != 3 || vals[0] == nil {
			// index entry without a hash; the session expired underneath us
			continue
		}
		sess, err := decodeSession(ids[i], vals)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

func decodeSession(id string, vals []any) (domain.Session, error) {
	userID, _ := vals[0].(string)
	created, err := parseMillis(vals[1])
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %s created_at: %v", ErrSessionCorrupt, id, err)
	}
	last, err := parseMillis(vals[2])
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %s last_activity: %v", ErrSessionCorrupt, id, err)
	}
	return domain.Session{
		ID:           id,
		UserID:       userID,
		CreatedAt:    created,
		LastActivity: last,
		Active:       true,
	}, nil
}

func parseMillis(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, errors.New("missing")
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}
