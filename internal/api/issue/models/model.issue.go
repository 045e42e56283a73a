// Package models - Issue thuộc domain Issue.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueStatus là trạng thái vòng đời của một issue
type IssueStatus string

// Các trạng thái hợp lệ của issue, theo thứ tự vòng đời:
// pending (khởi tạo) → in_progress → resolution_requested → completed (kết thúc)
const (
	StatusPending             IssueStatus = "pending"
	StatusInProgress          IssueStatus = "in_progress"
	StatusResolutionRequested IssueStatus = "resolution_requested"
	StatusCompleted           IssueStatus = "completed"
)

// IsValid kiểm tra status có nằm trong danh sách trạng thái hợp lệ không
func (s IssueStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolutionRequested, StatusCompleted:
		return true
	}
	return false
}

// Issue - Sự cố do tenant báo cáo trên một property, đi qua vòng đời trạng thái cố định.
// OwnerID là snapshot tại thời điểm tạo (resolve từ property), không re-resolve khi property đổi chủ.
// Issue không bao giờ bị xóa vật lý trong vận hành bình thường.
type Issue struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TenantID    primitive.ObjectID `json:"tenantId" bson:"tenantId" index:"single:1"`
	PropertyID  primitive.ObjectID `json:"propertyId" bson:"propertyId" index:"single:1"`
	OwnerID     primitive.ObjectID `json:"ownerId" bson:"ownerId" index:"single:1,compound:issue_owner_status"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Status      IssueStatus        `json:"status" bson:"status" index:"single:1,compound:issue_owner_status"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
	// CompletedAt chỉ được set đúng một lần khi status chuyển sang completed
	CompletedAt *int64 `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}
