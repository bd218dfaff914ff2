package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordguess/internal/platform/tui"
	"github.com/vovakirdan/wordguess/internal/storage"
	"github.com/vovakirdan/wordguess/internal/words"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve [pack]",
	Short: "Start the wordguess SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a word pack menu, or goes
straight into [pack] when given. The SSH user name is offered as the
leaderboard name. All users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wordguess/host_key

Examples:
  wordguess serve                           # Listen on :23234 with auto-generated key
  wordguess serve --ssh :2222               # Listen on port 2222
  wordguess serve --host-key ./my_host_key  # Use specific host key
  wordguess serve --leaderboard redis       # Share scores through Redis

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.MaximumNArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config: :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config: 30m)")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	pack := ""
	if len(args) > 0 {
		pack = args[0]
	}

	a := mustApp(ctx)
	defer a.Close()

	rules, err := a.rules(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	if pack == "" && a.cfg.WordsFile != "" {
		path, err := storage.ExpandPath(a.cfg.WordsFile)
		if err != nil {
			fail("%v", err)
		}
		if pack, err = words.RegisterFile(path); err != nil {
			fail("%v", err)
		}
	}
	open := func(packID string) (tui.Deps, error) {
		return a.deps(ctx, packID, "", rules)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = firstNonEmpty(flagSSHAddr, a.cfg.SSH.Addr, cfg.Address)
	cfg.HostKeyPath = firstNonEmpty(flagHostKey, a.cfg.SSH.HostKey)
	cfg.Seed = flagSeed
	cfg.Pack = pack
	switch {
	case flagIdleTimeout > 0:
		cfg.IdleTimeout = flagIdleTimeout
	case a.cfg.SSH.IdleTimeout > 0:
		cfg.IdleTimeout = a.cfg.SSH.IdleTimeout
	}

	server, err := tui.NewSSHServer(cfg, open, a.logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	port := cfg.Address
	if _, p, splitErr := net.SplitHostPort(cfg.Address); splitErr == nil {
		port = p
	}
	fmt.Printf("Starting wordguess SSH server on %s\n", cfg.Address)
	if pack != "" {
		fmt.Printf("Sessions start in pack %q\n", pack)
	}
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		a.Close()
		os.Exit(1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
