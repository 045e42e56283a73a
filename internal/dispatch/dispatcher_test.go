// Package dispatch - Test hành vi hàng đợi notification: FIFO, best-effort,
// drop khi đầy và drain khi Stop. Dùng fake Appender, không cần DB.
package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeAppender ghi lại các lần Append theo đúng thứ tự nhận được.
// failUntil > 0 thì Append thất bại cho tới lần gọi thứ failUntil (tính cả job trước đó).
type fakeAppender struct {
	mu        sync.Mutex
	calls     int
	messages  []string
	failUntil int
}

func (f *fakeAppender) Append(ctx context.Context, recipientID primitive.ObjectID, notifType string, message string, issueID *primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failUntil {
		return errors.New("mongo tạm thời không ghi được")
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeAppender) snapshot() (int, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, append([]string(nil), f.messages...)
}

func TestDispatcher_FIFOVaStopDrain(t *testing.T) {
	appender := &fakeAppender{}
	d := NewDispatcher(appender, 16, 3)
	d.Start(context.Background())

	recipient := primitive.NewObjectID()
	want := []string{"msg-1", "msg-2", "msg-3", "msg-4"}
	for _, msg := range want {
		d.Dispatch(recipient, "issue_update", msg, nil)
	}

	// Stop phải chờ consumer xử lý hết hàng đợi
	d.Stop()

	_, got := appender.snapshot()
	if len(got) != len(want) {
		t.Fatalf("cần %d notification, nhận %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification thứ %d sai thứ tự: cần '%s', nhận '%s'", i, want[i], got[i])
		}
	}
}

func TestDispatcher_RetryRoiThanhCong(t *testing.T) {
	// Thất bại 2 lần đầu, maxRetries=3 nên lần thứ 3 vẫn trong cùng một job
	appender := &fakeAppender{failUntil: 2}
	d := NewDispatcher(appender, 4, 3)
	d.Start(context.Background())

	d.Dispatch(primitive.NewObjectID(), "new_issue", "sau-retry", nil)
	d.Stop()

	calls, got := appender.snapshot()
	if calls != 3 {
		t.Errorf("cần đúng 3 lần gọi Append (2 fail + 1 thành công), nhận %d", calls)
	}
	if len(got) != 1 || got[0] != "sau-retry" {
		t.Errorf("notification phải được ghi sau retry: %v", got)
	}
}

func TestDispatcher_HetRetryKhongChanJobSau(t *testing.T) {
	// Job đầu thất bại cả 2 lần retry (dead-letter), job sau vẫn phải được ghi
	appender := &fakeAppender{failUntil: 2}
	d := NewDispatcher(appender, 4, 2)
	d.Start(context.Background())

	d.Dispatch(primitive.NewObjectID(), "new_issue", "se-dead-letter", nil)
	d.Dispatch(primitive.NewObjectID(), "new_issue", "van-duoc-ghi", nil)
	d.Stop()

	calls, got := appender.snapshot()
	if calls != 3 {
		t.Errorf("cần 3 lần gọi Append (2 fail của job đầu + 1 của job sau), nhận %d", calls)
	}
	if len(got) != 1 || got[0] != "van-duoc-ghi" {
		t.Errorf("job sau dead-letter phải được ghi bình thường: %v", got)
	}
}

func TestDispatcher_DayThiDrop(t *testing.T) {
	// Chưa Start: hàng đợi size 2 nhận được đúng 2 job, job thứ 3 bị drop
	appender := &fakeAppender{}
	d := NewDispatcher(appender, 2, 1)

	recipient := primitive.NewObjectID()
	d.Dispatch(recipient, "issue_update", "msg-1", nil)
	d.Dispatch(recipient, "issue_update", "msg-2", nil)
	d.Dispatch(recipient, "issue_update", "msg-3", nil)

	d.Start(context.Background())
	d.Stop()

	_, got := appender.snapshot()
	if len(got) != 2 {
		t.Fatalf("hàng đợi size 2 phải giữ đúng 2 notification, nhận %d: %v", len(got), got)
	}
	if got[0] != "msg-1" || got[1] != "msg-2" {
		t.Errorf("hai notification đầu phải được giữ theo thứ tự: %v", got)
	}
}

func TestNewDispatcher_GiaTriMacDinh(t *testing.T) {
	d := NewDispatcher(&fakeAppender{}, 0, 0)
	if cap(d.jobs) != 256 {
		t.Errorf("queueSize mặc định phải là 256, nhận %d", cap(d.jobs))
	}
	if d.maxRetries != 3 {
		t.Errorf("maxRetries mặc định phải là 3, nhận %d", d.maxRetries)
	}
}
