package main

import (
	"context"
	"os"

	"mindful/internal/cli"
	"mindful/internal/log"
)

func main() {
	// Load .env file for local development
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	root, closeFn := newRootCmd(cfg, logger)
	if err := execute(log.NewContext(context.Background(), logger), root, closeFn, os.Stderr); err != nil {
		os.Exit(1)
	}
}
