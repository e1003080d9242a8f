package main

import (
	"context"
	"log"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/app"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer a.Close()

	a.Run(ctx)
}
