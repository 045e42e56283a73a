// Package dispatch chứa dispatcher ghi notification bất đồng bộ.
// Transition trả response cho caller trước khi notification được ghi xong;
// ghi notification là best-effort, thất bại không rollback transition.
package dispatch

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ridhwankhan/RENTO-sub001/internal/logger"
	"github.com/ridhwankhan/RENTO-sub001/internal/utility"
)

// Appender ghi một bản ghi notification. Được implement bởi NotificationService.
type Appender interface {
	Append(ctx context.Context, recipientID primitive.ObjectID, notifType string, message string, issueID *primitive.ObjectID) error
}

// job là một yêu cầu ghi notification đã được xếp hàng
type job struct {
	recipientID primitive.ObjectID
	notifType   string
	message     string
	issueID     *primitive.ObjectID
}

// Dispatcher nhận yêu cầu ghi notification qua channel có giới hạn và xử lý
// bằng MỘT consumer goroutine duy nhất: các notification của cùng một issue
// được ghi theo đúng thứ tự transition đã được chấp nhận (FIFO).
// Không có thứ tự đảm bảo giữa các issue khác nhau.
type Dispatcher struct {
	appender   Appender
	jobs       chan job
	maxRetries int
	wg         sync.WaitGroup
}

// NewDispatcher tạo mới Dispatcher với kích thước hàng đợi và số lần retry tối đa.
// queueSize <= 0 hoặc maxRetries <= 0 sẽ dùng giá trị mặc định (256, 3).
func NewDispatcher(appender Appender, queueSize int, maxRetries int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Dispatcher{
		appender:   appender,
		jobs:       make(chan job, queueSize),
		maxRetries: maxRetries,
	}
}

// Start khởi động consumer goroutine. Gọi đúng một lần khi khởi động ứng dụng.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go utility.GoProtect(func() {
		defer d.wg.Done()
		d.run(ctx)
	})
}

// Dispatch xếp một yêu cầu ghi notification vào hàng đợi. Không block:
// hàng đợi đầy thì drop và ghi warning (best-effort, không trả lỗi cho caller).
func (d *Dispatcher) Dispatch(recipientID primitive.ObjectID, notifType string, message string, issueID *primitive.ObjectID) {
	j := job{
		recipientID: recipientID,
		notifType:   notifType,
		message:     message,
		issueID:     issueID,
	}
	select {
	case d.jobs <- j:
	default:
		utility.LogWarning("Hàng đợi notification đầy, drop notification",
			"recipientId", recipientID.Hex(),
			"type", notifType,
		)
	}
}

// Stop đóng hàng đợi và chờ consumer xử lý hết các job còn lại.
func (d *Dispatcher) Stop() {
	close(d.jobs)
	d.wg.Wait()
}

// run là vòng lặp consumer: xử lý tuần tự từng job cho tới khi channel đóng
// hoặc context bị hủy.
func (d *Dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-d.jobs:
			if !ok {
				return
			}
			d.process(ctx, j)
		}
	}
}

// process ghi một notification với số lần retry giới hạn.
// Hết retry thì ghi dead-letter vào error log, không bao giờ surface lỗi tới end user.
func (d *Dispatcher) process(ctx context.Context, j job) {
	var lastErr error
	for attempt := 1; attempt <= d.maxRetries; attempt++ {
		writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		lastErr = d.appender.Append(writeCtx, j.recipientID, j.notifType, j.message, j.issueID)
		cancel()
		if lastErr == nil {
			return
		}
		utility.LogWarning("Ghi notification thất bại, thử lại",
			"attempt", attempt,
			"recipientId", j.recipientID.Hex(),
			"error", lastErr.Error(),
		)
	}

	// Dead-letter: ghi đủ thông tin để xử lý thủ công
	issueIDHex := ""
	if j.issueID != nil {
		issueIDHex = j.issueID.Hex()
	}
	logger.GetErrorLogger().WithFields(map[string]interface{}{
		"recipientId": j.recipientID.Hex(),
		"type":        j.notifType,
		"message":     j.message,
		"issueId":     issueIDHex,
		"retries":     d.maxRetries,
	}).Error("Notification dead-letter: ghi thất bại sau khi hết số lần retry")
}
