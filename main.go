package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/radish-sh/radish/cli"
	"github.com/radish-sh/radish/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error(
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()
		os.Exit(1)
	}
}
