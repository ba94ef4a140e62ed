package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-sheet-gen/internal/config"
	"github.com/KirkDiggler/dnd-sheet-gen/internal/dice"
	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/character"
	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/rulebook"
)

var (
	levelFlag int
	classFlag string
	seedFlag  int64
	countFlag int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more character sheets",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&levelFlag, "level", 0, "character level, 1-20 (0 = random)")
	generateCmd.Flags().StringVar(&classFlag, "class", "", "character class: barbarian, fighter, rogue (empty = random)")
	generateCmd.Flags().Int64Var(&seedFlag, "seed", 0, "random seed (0 = seed from time)")
	generateCmd.Flags().IntVar(&countFlag, "count", 0, "number of characters to generate")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	seed := cfg.Seed
	if seedFlag != 0 {
		seed = seedFlag
	}

	count := cfg.Count
	if countFlag > 0 {
		count = countFlag
	}
	if count < 1 {
		count = 1
	}

	roller := dice.NewRandomRoller()
	if seed != 0 {
		log.Printf("Using seed %d", seed)
		roller = dice.NewSeededRoller(seed)
	}

	opts := []character.Option{character.WithRoller(roller)}

	if levelFlag != 0 {
		opts = append(opts, character.WithLevel(levelFlag))
	}

	if classFlag != "" {
		class, err := rulebook.ParseClass(classFlag)
		if err != nil {
			return err
		}
		opts = append(opts, character.WithClass(class))
	}

	for i := 0; i < count; i++ {
		c, err := character.Generate(opts...)
		if err != nil {
			return fmt.Errorf("failed to generate character: %w", err)
		}

		fmt.Println(c.Sheet())
	}

	return nil
}
