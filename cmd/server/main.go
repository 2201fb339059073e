package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"anka-backend/internal/catalog"
	"anka-backend/internal/config"
	"anka-backend/internal/database"
	"anka-backend/internal/server"
	"anka-backend/internal/store"
)

func main() {
	cfg := config.Load()

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	db := database.Init(cfg.DBDSN)

	r := server.NewRouter(cfg, server.Deps{
		Clients:     store.NewClients(db),
		Allocations: store.NewAllocations(db),
		Changes:     store.NewChangeLogs(db),
		Catalog:     catalog.Default(),
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logrus.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
