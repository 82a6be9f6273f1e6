// Package main is the entry point for the todosync CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todosync/internal/backend/googletasks"
	"todosync/internal/backend/todoist"
	"todosync/internal/cache"
	"todosync/internal/cli"
	"todosync/internal/commands"
	"todosync/internal/config"
	"todosync/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, newService, newSlot)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// newService picks the Remote Task Store backend.
func newService(ctx context.Context, cfg *config.Config) (service.Service, error) {
	switch cfg.Backend {
	case config.BackendGoogleTasks:
		if !cfg.HasOAuthClient() {
			return nil, fmt.Errorf("%w: oauth_client.json not found in %s", config.ErrNoOAuthClient, cfg.Dir)
		}
		if !cfg.HasToken() {
			return nil, config.ErrNotLoggedIn
		}
		return googletasks.New(ctx, cfg)
	default:
		return todoist.New(ctx, cfg)
	}
}

// newSlot picks where the Local Cache snapshot lives.
func newSlot(cfg *config.Config) (cache.Slot, error) {
	switch cfg.Cache {
	case config.CacheRedis:
		client, err := cache.DialRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return cache.NewRedisSlot(client, cfg.CacheSlot), nil
	default:
		return cache.NewFileSlot(cfg.CachePath()), nil
	}
}
