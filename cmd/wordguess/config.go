package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordguess/internal/config"
)

var flagConfigEnv bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration file. Save it to
~/.wordguess/config.yaml or ./configs/wordguess.yaml and edit to override.

With --env, list the WORDGUESS_* environment variables instead.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEnv, "env", false, "List environment variables")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigEnv {
		text, err := config.Describe()
		if err != nil {
			fail("%v", err)
		}
		fmt.Println(text)
		return
	}

	if dotenvErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", dotenvErr)
	}
	if _, path, err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: current config is invalid: %v\n", err)
	} else if path != "" {
		fmt.Fprintf(os.Stderr, "Current config: %s\n", path)
	}
	os.Stdout.Write(config.DefaultYAML())
}
