package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"pharmapos/m/internal/api"
	"pharmapos/m/internal/config"
	"pharmapos/m/internal/ids"
	"pharmapos/m/internal/seed"
	"pharmapos/m/internal/store"
	"pharmapos/m/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Must(logger.New())
	defer log.Sync()

	src := ids.UUIDSource{}
	st := store.New(src, time.Now, logger.Named(log, "store"))

	snap := seed.Defaults()
	if cfg.CatalogPath != "" {
		snap.Medicines = append(snap.Medicines, seed.LoadCatalog(cfg.CatalogPath, src, logger.Named(log, "seed"))...)
	}
	st.Load(snap)

	handler := api.New(st, logger.Named(log, "api"))

	log.Info("pharmacy POS server starting",
		zap.String("port", cfg.HTTPPort),
		zap.String("environment", cfg.Environment))
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
