// wordguess is a terminal word guessing game.
//
// Usage:
//
//	wordguess play [pack]      - Play a game
//	wordguess menu             - Pick a word pack interactively
//	wordguess list             - List available word packs
//	wordguess scores           - Show the leaderboard
//	wordguess stats [pack]     - Show game statistics
//	wordguess open <url>       - Open a wordguess:// link
//	wordguess serve            - Start SSH server for remote play
//	wordguess config           - Print the default configuration
//
// Global flags:
//
//	--seed <value>         - Set RNG seed for reproducible word order
//	--db <path>            - Set database path (default: ~/.wordguess/scores.db)
//	--config <path>        - Use a specific config file
//	--log-level <level>    - debug, info, warn or error
//	--leaderboard <name>   - Leaderboard backend: sqlite, redis or memory
//	--redis <addr>         - Redis address for the redis backend
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagLogLevel    string
	flagLeaderboard string
	flagRedisAddr   string

	// dotenvErr is reported once the logger exists.
	dotenvErr error
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordguess",
	Short: "Word Guess - guess the hidden word in your terminal",
	Long: `Word Guess is a terminal word game. Guess the hidden word within six
tries; every guess shows which letters are in the right spot and which
are in the word but elsewhere.

Available commands:
  play     - Play a game directly
  menu     - Interactive word pack picker
  list     - Show all word packs
  scores   - View the leaderboard
  stats    - View game statistics
  open     - Open a wordguess:// link
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  wordguess play
  wordguess play short --difficulty easy
  wordguess open wordguess://leaderboard
  wordguess serve --ssh :2222
  wordguess scores --limit 5`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		dotenvErr = loadDotEnv()
	},
}

func init() {
	// Global persistent flags. Empty values keep the configured ones.
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config: ~/.wordguess/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboard, "leaderboard", "", "Leaderboard backend: sqlite, redis, memory")
	rootCmd.PersistentFlags().StringVar(&flagRedisAddr, "redis", "", "Redis address (host:port) for the redis leaderboard")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadDotEnv reads .env files into the environment. Missing files are
// not an error.
func loadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading .env: %w", err)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
