package main

import (
	"context"

	"main/di"
	"main/logger"
)

func main() {
	ctx := context.Background()

	app, err := di.Build(ctx)
	if err != nil {
		log := logger.New()
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer app.Pool.Close()

	if err := app.Server.Listen(app.Config.HTTPAddr); err != nil {
		app.Log.Fatal().Err(err).Msg("server stopped")
	}
}
