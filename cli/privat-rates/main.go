package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/checkmateLL/privat-rates/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(&cmd.Config{Ctx: ctx}); err != nil {
		log.Fatal(err)
	}
}
