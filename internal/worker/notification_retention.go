package worker

import (
	"context"
	"time"

	notifsvc "github.com/ridhwankhan/RENTO-sub001/internal/api/notification/service"
	"github.com/ridhwankhan/RENTO-sub001/internal/logger"
)

// NotificationRetentionWorker worker để tự động prune notification đã đọc quá hạn giữ.
// Chạy định kỳ; notification chưa đọc được giữ lại bất kể tuổi.
type NotificationRetentionWorker struct {
	notificationService *notifsvc.NotificationService
	interval            time.Duration // Khoảng thời gian giữa các lần chạy
	retention           time.Duration // Tuổi tối đa của notification đã đọc
}

// NewNotificationRetentionWorker tạo mới NotificationRetentionWorker
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (mặc định: 24 giờ)
//   - retention: Tuổi tối đa của notification đã đọc (mặc định: 30 ngày)
//
// Trả về:
//   - *NotificationRetentionWorker: Instance mới của NotificationRetentionWorker
//   - error: Lỗi nếu có trong quá trình khởi tạo
func NewNotificationRetentionWorker(interval time.Duration, retention time.Duration) (*NotificationRetentionWorker, error) {
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}

	// Set defaults
	if interval < time.Minute {
		interval = 24 * time.Hour
	}
	if retention < time.Hour {
		retention = 30 * 24 * time.Hour
	}

	return &NotificationRetentionWorker{
		notificationService: notificationService,
		interval:            interval,
		retention:           retention,
	}, nil
}

// Start bắt đầu background worker prune notification đã đọc quá hạn.
// Worker chạy định kỳ theo interval cho tới khi context bị hủy.
func (w *NotificationRetentionWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"retention": w.retention.String(),
	}).Info("[NOTIFICATION_RETENTION] Starting Notification Retention Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("[NOTIFICATION_RETENTION] Notification Retention Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("[NOTIFICATION_RETENTION] Panic khi prune notification, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				prunedCount, err := w.notificationService.PruneRead(ctx, w.retention)
				if err != nil {
					log.WithError(err).Error("[NOTIFICATION_RETENTION] Failed to prune read notifications")
					return
				}

				if prunedCount > 0 {
					log.WithFields(map[string]interface{}{
						"prunedCount": prunedCount,
						"retention":   w.retention.String(),
					}).Info("[NOTIFICATION_RETENTION] Pruned read notifications")
				}
				// Nếu prunedCount = 0, không log (giảm log noise)
			}()
		}
	}
}
