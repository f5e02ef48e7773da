// Command replay runs a session log through the profile engine one message
// at a time, printing the psyche and relationship trajectory. Running it
// twice over the same log prints identical trajectories; the engine is
// deterministic. With DATABASE_URL set it persists per-minute snapshots,
// with REDIS_ADDR set it shares the snapshot cache.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pascolabs/neuralsim/internal/cache"
	"github.com/pascolabs/neuralsim/internal/config"
	"github.com/pascolabs/neuralsim/internal/profile"
	"github.com/pascolabs/neuralsim/internal/repository"
	"github.com/pascolabs/neuralsim/internal/types"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	cardPath := flag.String("card", "", "path to character card JSON (required)")
	logPath := flag.String("log", "", "path to session log JSON (required)")
	sessionID := flag.String("session", "replay", "session id used when persisting snapshots")
	flag.Parse()

	if *cardPath == "" || *logPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	character, messages, err := loadInputs(*cardPath, *logPath)
	if err != nil {
		log.Fatalf("failed to load inputs: %v", err)
	}

	var store *repository.Store
	if cfg.DatabaseURL != "" {
		store, err = repository.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer store.Close()
	}

	opts := []profile.Option{}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = client.Close() }()
		opts = append(opts, profile.WithSnapshotCache(cache.NewRedisCache(client, cache.RedisCacheConfig{
			Prefix: cfg.RedisPrefix,
			TTL:    cfg.CacheTTL,
		})))
	}

	engine := profile.NewEngine(func() profile.Settings {
		return profile.Settings{UserName: cfg.UserName}
	}, opts...)

	lastMinute := int64(-1)
	for i := range messages {
		window := messages[:i+1]
		when := messages[i].Timestamp
		snapshot := engine.ComputeNeuralProfile(character, window, nil, when)

		fmt.Printf("%3d  psyche=%3d %-10s  bond=%4d %-22s %-13s focus=%v\n",
			i+1,
			snapshot.Psyche.Score, snapshot.Psyche.Status,
			snapshot.Social.Score, snapshot.Social.Tier.Label,
			snapshot.Social.Trend, snapshot.Memory.Focus)

		minute := when / 60000
		if store != nil && minute != lastMinute {
			if err := store.Snapshots.SaveSnapshot(ctx, *sessionID, minute, &snapshot, character); err != nil {
				slog.Warn("failed to persist snapshot", "minute", minute, "error", err.Error())
			}
			lastMinute = minute
		}
	}
}

func loadInputs(cardPath, logPath string) (*types.Character, []types.Message, error) {
	cardData, err := os.ReadFile(cardPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read card: %w", err)
	}
	character, err := types.DecodeCard(cardData)
	if err != nil {
		return nil, nil, err
	}

	logData, err := os.ReadFile(logPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read session log: %w", err)
	}
	var messages []types.Message
	if err := json.Unmarshal(logData, &messages); err != nil {
		return nil, nil, fmt.Errorf("failed to parse session log: %w", err)
	}
	return character, messages, nil
}
