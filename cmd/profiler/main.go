// Command profiler computes one Neural Profile snapshot from a character
// card and a session log, and prints it as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/pascolabs/neuralsim/internal/config"
	"github.com/pascolabs/neuralsim/internal/profile"
	"github.com/pascolabs/neuralsim/internal/types"
)

func main() {
	// .env is optional; env vars win either way.
	_ = godotenv.Load()
	cfg := config.Load()

	cardPath := flag.String("card", "", "path to character card JSON (required)")
	logPath := flag.String("log", "", "path to session log JSON (required)")
	virtualTime := flag.Int64("time", 0, "virtual time in ms; defaults to the last message timestamp")
	userName := flag.String("user", cfg.UserName, "user display name")
	flag.Parse()

	if *cardPath == "" || *logPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	character, messages, err := loadInputs(*cardPath, *logPath)
	if err != nil {
		log.Fatalf("failed to load inputs: %v", err)
	}

	when := *virtualTime
	if when == 0 && len(messages) > 0 {
		when = messages[len(messages)-1].Timestamp
	}

	engine := profile.NewEngine(func() profile.Settings {
		return profile.Settings{UserName: *userName}
	})
	snapshot := engine.ComputeNeuralProfile(character, messages, nil, when)

	out, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode profile: %v", err)
	}
	fmt.Println(string(out))
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
