package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilequest/internal/config"
	"github.com/vovakirdan/tilequest/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tilequest SSH server",
	Long: `Start an SSH server that lets users connect and play.

Content is loaded once at startup. Each SSH connection gets its own
game starting at the configured start level; sessions never share
game state.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.tilequest/host_key

Examples:
  quest serve                           # Listen on the configured address
  quest serve --ssh :2222               # Listen on port 2222
  quest serve --host-key ./my_host_key  # Use specific host key
  quest serve --pack ./content.db       # Serve a content pack

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
	serveCmd.Flags().StringVar(&flagStart, "start", "", "Level to start in (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "quest-ssh")

	newGame, err := newGameFactory(flagStart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}

	sc := tui.DefaultSSHServerConfig()
	sc.Address = cfg.Server.Address
	sc.HostKeyPath = config.ExpandHome(cfg.Server.HostKeyPath)
	sc.IdleTimeout = cfg.Server.IdleTimeout
	sc.Runtime = runtimeConfig(0, 0)
	sc.NewGame = newGame

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		sc.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		sc.HostKeyPath = config.ExpandHome(flagHostKey)
	}
	if flags.Changed("idle-timeout") {
		sc.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(sc, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting tilequest SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
