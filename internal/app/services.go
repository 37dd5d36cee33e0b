package app

import (
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/tinysteps/session-service/config"
	"github.com/tinysteps/session-service/internal/integration"
	"github.com/tinysteps/session-service/internal/repo"
	"github.com/tinysteps/session-service/internal/service/offering"
	"github.com/tinysteps/session-service/internal/service/sessiontype"
	"github.com/tinysteps/session-service/internal/service/transfer"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideSessionTypeService,
		ProvideOfferingService,
		ProvideTransferService,
	),
)

func ProvideSessionTypeService(db *repo.Client) sessiontype.Service {
	return sessiontype.New(db, slog.Default())
}

func ProvideOfferingService(db *repo.Client, doctors integration.DoctorValidator) offering.Service {
	return offering.New(db, doctors, slog.Default())
}

func ProvideTransferService(db *repo.Client, rdb *redis.Client, nc *nats.Conn, cfg *config.Config) transfer.Service {
	store := transfer.NewEntStore(db)

	var ledger transfer.Ledger
	switch cfg.Transfer.LedgerBackend {
	case "redis":
		ttl := time.Duration(cfg.Transfer.LedgerTTLHours) * time.Hour
		ledger = transfer.NewRedisLedger(rdb, ttl)
	default:
		ledger = transfer.NewMemoryLedger()
	}

	var publisher transfer.Publisher
	if nc != nil {
		publisher = transfer.NewNatsPublisher(nc)
	} else {
		publisher = transfer.NewNoopPublisher()
	}

	return transfer.New(store, ledger, publisher, slog.Default())
}
