package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/jms-catering/api/internal/config"
	"github.com/jms-catering/api/internal/document"
	"github.com/jms-catering/api/internal/repository"
	"github.com/jms-catering/api/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()
	ctx := context.Background()

	// The logo decodes in the background while the database comes up.
	logoCh := document.LoadLogo(cfg.LogoPath)

	pool, err := repository.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	logo := <-logoCh
	if !logo.Loaded {
		log.Printf("logo %s unavailable, documents fall back to text header", cfg.LogoPath)
	}

	orders := repository.NewOrderStore(pool)
	cat := repository.NewCatalogStore(pool)
	renderer := document.NewPDFRenderer(document.DefaultBusinessInfo(), logo)

	r := router.New(orders, cat, renderer)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
