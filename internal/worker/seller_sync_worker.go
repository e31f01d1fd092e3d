// Package worker - SellerSyncWorker đồng bộ người bán từ API bên ngoài theo chu kỳ.
package worker

import (
	"context"
	"time"

	sellersvc "hr_center/internal/api/seller/service"
	"hr_center/internal/logger"
)

// SellerSyncWorker chạy đồng bộ seller định kỳ. Scheduler thuộc sở hữu của
// worker: vòng lặp ticker trong Start, dừng qua context hoặc Stop.
// RunOnce cho phép chạy một lần có chủ đích (khởi động lần đầu, kiểm thử).
type SellerSyncWorker struct {
	sellerService *sellersvc.SellerService
	interval      time.Duration
	stop          chan struct{}
}

// NewSellerSyncWorker tạo worker mới. interval dưới 1 phút bị nâng lên mặc định 6 giờ.
func NewSellerSyncWorker(interval time.Duration) (*SellerSyncWorker, error) {
	sellerService, err := sellersvc.NewSellerService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 6 * time.Hour
	}
	return &SellerSyncWorker{
		sellerService: sellerService,
		interval:      interval,
		stop:          make(chan struct{}),
	}, nil
}

// Start chạy worker trong vòng lặp cho đến khi context hủy hoặc Stop được gọi.
func (w *SellerSyncWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🔄 [SELLER_SYNC] Starting Seller Sync Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🔄 [SELLER_SYNC] Seller Sync Worker stopped")
			return
		case <-w.stop:
			log.Info("🔄 [SELLER_SYNC] Seller Sync Worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// Stop dừng worker. Chỉ gọi một lần, từ luồng shutdown.
func (w *SellerSyncWorker) Stop() {
	close(w.stop)
}

// RunOnce chạy một lần đồng bộ. Panic và lỗi được log, không lan ra vòng lặp.
func (w *SellerSyncWorker) RunOnce(ctx context.Context) {
	log := logger.GetAppLogger()

	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("🔄 [SELLER_SYNC] Panic khi đồng bộ, sẽ tiếp tục chu kỳ tiếp theo")
		}
	}()

	if _, err := w.sellerService.SyncFromRemote(ctx); err != nil {
		log.WithError(err).Error("🔄 [SELLER_SYNC] Đồng bộ seller thất bại, chờ chu kỳ tiếp theo")
	}
}
