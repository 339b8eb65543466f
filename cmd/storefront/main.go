package main

import (
	"context"
	"log"

	"github.com/apolyakov/storefront/internal/cli"
	"github.com/apolyakov/storefront/internal/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
