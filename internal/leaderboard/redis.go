package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores the board in a sorted set plus one hash per entry:
//
//	<prefix>:scores          ZSET member -> score
//	<prefix>:entry:<member>  HASH id, name, score, word, guesses, created_at
//
// Members are "<unix nanos>:<id>" so that equal scores list newest first.
// Several SSH hosts can share one board through the same Redis.
type Redis struct {
	client *redis.Client
	prefix string
	size   int
}

// NewRedis creates a board on an existing client.
func NewRedis(client *redis.Client, prefix string, size int) *Redis {
	if prefix == "" {
		prefix = "wordguess"
	}
	if size <= 0 {
		size = DefaultSize
	}
	return &Redis{client: client, prefix: prefix, size: size}
}

// DialRedis connects to addr and verifies the connection.
func DialRedis(ctx context.Context, opts *redis.Options, prefix string, size int) (*Redis, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("leaderboard: failed to connect to Redis at %s: %w", opts.Addr, err)
	}
	return NewRedis(client, prefix, size), nil
}

func (r *Redis) scoresKey() string {
	return r.prefix + ":scores"
}

func (r *Redis) entryKey(member string) string {
	return r.prefix + ":entry:" + member
}

func member(e Entry) string {
	return fmt.Sprintf("%020d:%s", e.CreatedAt.UnixNano(), e.ID)
}

// Add stores the entry, trims the board and returns the entry's rank.
func (r *Redis) Add(ctx context.Context, e Entry) (int, error) {
	e, err := Normalize(e)
	if err != nil {
		return 0, err
	}
	m := member(e)

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.entryKey(m), map[string]any{
			"id":         e.ID,
			"name":       e.Name,
			"score":      e.Score,
			"word":       e.Word,
			"guesses":    e.Guesses,
			"created_at": e.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		pipe.ZAdd(ctx, r.scoresKey(), redis.Z{Score: float64(e.Score), Member: m})
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("leaderboard: failed to add entry: %w", err)
	}

	if err := r.trim(ctx); err != nil {
		return 0, err
	}

	rank, err := r.client.ZRevRank(ctx, r.scoresKey(), m).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("leaderboard: failed to get rank: %w", err)
	}
	return int(rank) + 1, nil
}

// trim drops everything below the top size entries.
func (r *Redis) trim(ctx context.Context) error {
	extra, err := r.client.ZRevRange(ctx, r.scoresKey(), int64(r.size), -1).Result()
	if err != nil {
		return fmt.Errorf("leaderboard: failed to list overflow: %w", err)
	}
	if len(extra) == 0 {
		return nil
	}
	return r.remove(ctx, extra)
}

func (r *Redis) remove(ctx context.Context, members []string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		keys := make([]string, len(members))
		zmembers := make([]any, len(members))
		for i, m := range members {
			keys[i] = r.entryKey(m)
			zmembers[i] = m
		}
		pipe.Del(ctx, keys...)
		pipe.ZRem(ctx, r.scoresKey(), zmembers...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("leaderboard: failed to remove entries: %w", err)
	}
	return nil
}

// Top returns up to n entries, best first.
func (r *Redis) Top(ctx context.Context, n int) ([]Entry, error) {
	stop := int64(n - 1)
	if n <= 0 {
		stop = -1
	}
	members, err := r.client.ZRevRange(ctx, r.scoresKey(), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: failed to list scores: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(members))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, m := range members {
			cmds[i] = pipe.HGetAll(ctx, r.entryKey(m))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("leaderboard: failed to load entries: %w", err)
	}

	entries := make([]Entry, 0, len(members))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue // hash expired or removed concurrently
		}
		entries = append(entries, decodeEntry(fields))
	}
	return entries, nil
}

func decodeEntry(fields map[string]string) Entry {
	e := Entry{
		ID:   fields["id"],
		Name: fields["name"],
		Word: fields["word"],
	}
	e.Score, _ = strconv.Atoi(fields["score"])
	e.Guesses, _ = strconv.Atoi(fields["guesses"])
	if t, err := time.Parse(time.RFC3339Nano, fields["created_at"]); err == nil {
		e.CreatedAt = t
	}
	return e
}

// Rank returns the position a new entry with score would take.
func (r *Redis) Rank(ctx context.Context, score int) (int, error) {
	above, err := r.client.ZCount(ctx, r.scoresKey(), "("+strconv.Itoa(score), "+inf").Result()
	if err != nil {
		return 0, fmt.Errorf("leaderboard: failed to count scores: %w", err)
	}
	return int(above) + 1, nil
}

// Clear removes every entry.
func (r *Redis) Clear(ctx context.Context) error {
	members, err := r.client.ZRange(ctx, r.scoresKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("leaderboard: failed to list scores: %w", err)
	}
	if len(members) > 0 {
		if err := r.remove(ctx, members); err != nil {
			return err
		}
	}
	return r.client.Del(ctx, r.scoresKey()).Err()
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

var _ Board = (*Redis)(nil)
