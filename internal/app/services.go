package app

import (
	"fmt"

	"github.com/yungbote/bookfront/internal/delivery"
	"github.com/yungbote/bookfront/internal/landing"
	"github.com/yungbote/bookfront/internal/platform/logger"
	"github.com/yungbote/bookfront/internal/services"
)

type Services struct {
	Resolver   *landing.Resolver
	Chooser    *delivery.Chooser
	Deliveries *delivery.Deliveries
	Access     *delivery.AccessFlow
	Purchase   *delivery.Purchase
	Covers     services.CoverService
}

func wireServices(log *logger.Logger, cfg Config, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	covers, err := services.NewCoverService(log)
	if err != nil {
		return Services{}, fmt.Errorf("init cover service: %w", err)
	}
	api := clients.LandingAPI
	return Services{
		Resolver:   landing.NewResolver(log, api, api),
		Chooser:    delivery.NewChooser(cfg.ReaderURL),
		Deliveries: delivery.NewDeliveries(log, api),
		Access:     delivery.NewAccessFlow(log, api),
		Purchase:   delivery.NewPurchase(log, api),
		Covers:     covers,
	}, nil
}
