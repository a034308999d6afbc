// chroma is a terminal colour-discrimination game: spot the one cell whose
// colour differs before the clock runs out.
//
// Usage:
//
//	chroma                   - Play (same as chroma play)
//	chroma play              - Play a session
//	chroma scores            - Show saved sessions
//	chroma serve             - Start SSH server for remote play
//	chroma ranks             - Show the rank ladder
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 10)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.chroma/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//
// CHROMA_DB, CHROMA_SEED, CHROMA_CONFIG and CHROMA_DIFFICULTY, from the
// environment or a .env file, replace the defaults of the matching flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chroma/internal/config"
)

const defaultDBPath = "~/.chroma/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chroma",
	Short: "Chroma - find the odd colour out in your terminal",
	Long: `Chroma shows a grid of coloured cells where exactly one cell differs
slightly in hue, saturation or lightness. Pick it before the clock runs out:
hits add time, misses cost time, and every hit makes the next grid bigger
and the difference smaller.

Available commands:
  play     - Play a session (default)
  scores   - View saved sessions
  serve    - Start SSH server for remote play
  ranks    - Show the rank ladder

Examples:
  chroma
  chroma play --difficulty hard
  chroma scores --tui
  chroma serve --ssh :2222`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnvDefaults,
	Run:               runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ranksCmd)
}

// loadEnvDefaults reads .env and lets environment variables fill flags the
// user did not set explicitly.
func loadEnvDefaults(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = config.EnvString(config.EnvDBPath, flagDBPath)
	}
	if !flags.Changed("seed") {
		flagSeed = config.EnvInt64(config.EnvSeed, flagSeed)
	}
	if !flags.Changed("config") {
		flagConfig = config.EnvString(config.EnvConfigPath, flagConfig)
	}
	if !flags.Changed("difficulty") {
		flagDifficulty = config.EnvString(config.EnvDifficulty, flagDifficulty)
	}
	return nil
}

// loadGameConfig loads the game config and applies the difficulty preset.
func loadGameConfig() (config.ChromaConfig, error) {
	cfg, err := config.LoadChroma(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyChromaPreset(&cfg, preset)

	return cfg, cfg.Validate()
}
