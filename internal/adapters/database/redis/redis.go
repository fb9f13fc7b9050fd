package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sportsync/club-service/internal/adapters/database/redis/invites"
)

type Client struct {
	Invites *invites.Storage
}

type Options struct {
	Host      string
	Port      string
	Password  string
	InviteTTL time.Duration
}

func New(opts Options) (*Client, error) {
	inviteStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := inviteStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping invite storage: %w", err)
	}

	return &Client{
		Invites: invites.NewStorage(inviteStorage, opts.InviteTTL),
	}, nil
}
