package main

import (
	"context"
	"os"

	"github.com/hashicorp/go-hclog"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		hclog.New(&hclog.LoggerOptions{
			Name:   "solace-config",
			Output: os.Stderr,
		}).Error("command failed", "error", err)
		os.Exit(1)
	}
}
