package notifsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/ridhwankhan/RENTO-sub001/internal/api/base/service"
	notifmodels "github.com/ridhwankhan/RENTO-sub001/internal/api/notification/models"
	"github.com/ridhwankhan/RENTO-sub001/internal/common"
	"github.com/ridhwankhan/RENTO-sub001/internal/global"
)

// NotificationService là cấu trúc chứa các phương thức liên quan đến Notification
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[notifmodels.Notification]
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}

	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[notifmodels.Notification](collection),
	}, nil
}

// Append ghi một bản ghi notification (implement dispatch.Appender).
// Mỗi lần gọi tạo đúng một bản ghi, read mặc định false.
func (s *NotificationService) Append(ctx context.Context, recipientID primitive.ObjectID, notifType string, message string, issueID *primitive.ObjectID) error {
	notification := notifmodels.Notification{
		UserID:  recipientID,
		Type:    notifType,
		Message: message,
		IssueID: issueID,
		Read:    false,
	}
	_, err := s.InsertOne(ctx, notification)
	return err
}

// listSort là thứ tự đọc notification: mới nhất trước theo createdAt,
// đồng mili-giây thì theo _id giảm dần. _id của hai bản ghi cùng issue tăng
// theo thứ tự consumer ghi, nên thứ tự đọc luôn xác định và khớp thứ tự ghi.
func listSort() bson.D {
	return bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	}
}

// ListForUser liệt kê notification của một user, mới nhất trước
func (s *NotificationService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]notifmodels.Notification, error) {
	opts := options.Find().SetSort(listSort())
	notifications, err := s.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []notifmodels.Notification{}
	}
	return notifications, nil
}

// MarkRead đánh dấu notification đã đọc cho một user, trả về số lượng đã cập nhật.
// Idempotent: chỉ match các bản ghi read=false, đánh dấu lại bản đã đọc là no-op.
//
// Parameters:
// - userID: user sở hữu notification
// - notificationIDs: danh sách cần đánh dấu; để trống kết hợp all=true để đánh dấu tất cả
// - all: đánh dấu tất cả notification chưa đọc của user
func (s *NotificationService) MarkRead(ctx context.Context, userID primitive.ObjectID, notificationIDs []primitive.ObjectID, all bool) (int64, error) {
	if !all && len(notificationIDs) == 0 {
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			"Phải truyền notificationIds hoặc all=true",
			common.StatusBadRequest,
			nil,
		)
	}

	filter := bson.M{
		"userId": userID,
		"read":   false,
	}
	if !all {
		filter["_id"] = bson.M{"$in": notificationIDs}
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"read": true},
	}
	return s.UpdateMany(ctx, filter, update, nil)
}

// PruneRead xóa các notification đã đọc cũ hơn retention (dùng bởi retention worker).
// Chỉ prune bản ghi đã đọc; notification chưa đọc được giữ lại bất kể tuổi.
func (s *NotificationService) PruneRead(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan).UnixMilli()
	filter := bson.M{
		"read":      true,
		"updatedAt": bson.M{"$lt": cutoff},
	}
	return s.DeleteMany(ctx, filter)
}
