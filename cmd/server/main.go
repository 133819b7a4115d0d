package main

import (
	"time"

	"github.com/smaite/karobar-ledger/internal/api"
	"github.com/smaite/karobar-ledger/internal/config"
	"github.com/smaite/karobar-ledger/internal/daywindow"
	"github.com/smaite/karobar-ledger/internal/events/kafka"
	"github.com/smaite/karobar-ledger/internal/interfaces"
	"github.com/smaite/karobar-ledger/internal/ledger"
	"github.com/smaite/karobar-ledger/internal/storage/memory"
	"github.com/smaite/karobar-ledger/internal/storage/postgres"
)

func main() {
	log := config.GetLogger()

	var store interfaces.ShopStore
	if dsn := config.DatabaseDSN(); dsn != "" {
		pg, err := postgres.Open(dsn)
		if err != nil {
			log.Fatalf("could not connect to postgres: %v", err)
		}
		store = pg
		log.Info("using postgres store")
	} else {
		store = memory.NewStore()
		log.Warn("DATABASE_URL not set, using in-memory store")
	}

	opts := []ledger.Option{
		ledger.WithLogger(log),
		ledger.WithBoundary(daywindow.Boundary{
			DayEndHour:   config.DayEndHour(),
			DayEndMinute: config.DayEndMinute(),
			Location:     time.Local,
		}),
	}
	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		opts = append(opts, ledger.WithPublisher(kafka.NewPublisher(brokers)))
		log.WithField("brokers", brokers).Info("event publishing enabled")
	}

	service := ledger.NewService(store, opts...)
	router := api.NewRouter(api.NewHandlers(service, log))

	addr := ":" + config.Port()
	log.WithField("addr", addr).Info("starting server")
	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
