package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/bratus/pavadzimes/internal/app"
	"github.com/bratus/pavadzimes/internal/cli"
	"github.com/bratus/pavadzimes/internal/config"
	"github.com/bratus/pavadzimes/internal/logger"
)

func main() {
	// .env is optional; it may carry GOOGLE_CREDENTIALS and friends
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	// If the user asked for help, avoid initializing the full app
	skipInit := false
	for _, a := range os.Args[1:] {
		if a == "-h" || a == "--help" || a == "help" {
			skipInit = true
			break
		}
	}

	if !skipInit {
		cfg, err := config.LoadDefault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		if err := logger.Setup(cfg.Log); err != nil {
			fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
			os.Exit(1)
		}

		a, err := app.NewWithConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
			os.Exit(1)
		}
		cli.SetApp(a)
	}

	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
