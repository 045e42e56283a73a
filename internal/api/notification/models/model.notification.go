// Package models - Notification thuộc domain Notification.
package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại notification
const (
	TypeNewIssue    = "new_issue"    // Tenant vừa tạo issue mới, gửi cho owner
	TypeIssueUpdate = "issue_update" // Issue vừa chuyển trạng thái, gửi cho bên còn lại
)

// Notification - Bản ghi thông báo gửi tới một user, tạo bởi dispatcher,
// chỉ mutate qua thao tác đánh dấu đã đọc; có thể bị prune bởi retention worker.
type Notification struct {
	ID      primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	UserID  primitive.ObjectID  `json:"userId" bson:"userId" index:"single:1,compound:notification_user_created"`
	Type    string              `json:"type" bson:"type"`
	Message string              `json:"message" bson:"message"`
	IssueID *primitive.ObjectID `json:"issueId,omitempty" bson:"issueId,omitempty"`
	Read    bool                `json:"read" bson:"read" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"compound:notification_user_created"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// NewIssueMessage sinh nội dung thông báo khi tenant tạo issue mới
func NewIssueMessage(title string) string {
	return fmt.Sprintf("Issue mới được báo cáo: '%s'", title)
}

// IssueUpdateMessage sinh nội dung thông báo khi issue chuyển trạng thái
func IssueUpdateMessage(title string, status string) string {
	return fmt.Sprintf("Issue '%s' đã chuyển sang trạng thái '%s'", title, status)
}
