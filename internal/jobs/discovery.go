package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"procuroid.app/internal/models"
	"procuroid.app/internal/services"
	"procuroid.app/pkg/directory"
)

// DiscoveryJob walks open discovery-mode orders and pulls candidate
// suppliers for them out of the public supplier directory.
type DiscoveryJob struct {
	client              directory.Client
	directoryURL        string
	orderService        *services.OrderService
	supplierService     *services.SupplierService
	notificationService *services.NotificationService
}

func NewDiscoveryJob(
	client directory.Client,
	directoryURL string,
	orderService *services.OrderService,
	supplierService *services.SupplierService,
	notificationService *services.NotificationService,
) DiscoveryJob {
	return DiscoveryJob{
		client:              client,
		directoryURL:        directoryURL,
		orderService:        orderService,
		supplierService:     supplierService,
		notificationService: notificationService,
	}
}

func (j DiscoveryJob) ID() string {
	return "supplier-discovery"
}

func (j DiscoveryJob) RunEvery() time.Duration {
	//nolint:mnd //no magic number
	return 24 * time.Hour
}

func (j DiscoveryJob) Run(ctx context.Context, logger *slog.Logger) error {
	if j.directoryURL == "" {
		logger.Debug("no directory configured, skipping discovery")
		return nil
	}

	orders, err := j.orderService.GetOpenDiscovery(ctx)
	if err != nil {
		return err
	}

	for _, order := range orders {
		logger.Debug(
			fmt.Sprintf(
				"searching directory for order %s (%s)",
				order.ID,
				order.ProductDescription,
			),
		)

		entries, err := j.client.Search(
			j.directoryURL,
			order.ProductDescription,
		)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			continue
		}

		imported, err := j.supplierService.ImportDiscovered(
			ctx,
			order.UserID,
			entries,
		)
		if err != nil {
			return err
		}

		logger.Debug(fmt.Sprintf("imported %d suppliers", imported))

		err = j.notificationService.NotifyOnce(
			ctx,
			order.UserID,
			models.NotificationSupplierDiscovery,
			fmt.Sprintf(
				"Found %d candidate suppliers for %s",
				imported,
				order.ProductDescription,
			),
			j.RunEvery(),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
