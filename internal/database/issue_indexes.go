// Package database - Index cho các collection của hệ thống sự cố (compound, sort theo thời gian).
package database

import (
	"context"
	"strings"

	"github.com/ridhwankhan/RENTO-sub001/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIssueIndexes tạo các index cho collection issues, notifications và properties.
// Gọi một lần khi khởi động server, sau khi đã đăng ký collection vào registry.
func CreateIssueIndexes(ctx context.Context, db *mongo.Database) error {
	// issues: (ownerId, status) — đếm sự cố completed theo chủ nhà cho bảng xếp hạng
	issues := db.Collection(global.MongoDB_ColNames.Issues)
	if _, err := issues.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("issue_owner_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// issues: (tenantId, createdAt desc) — danh sách sự cố của người thuê, mới nhất trước
	if _, err := issues.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenantId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("issue_tenant_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// issues: propertyId — lọc sự cố theo bất động sản
	if _, err := issues.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "propertyId", Value: 1}},
		Options: options.Index().SetName("issue_property"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// notifications: (userId, createdAt desc) — hộp thông báo của người dùng
	notifications := db.Collection(global.MongoDB_ColNames.Notifications)
	if _, err := notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("notification_user_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// notifications: (read, updatedAt) — worker dọn thông báo đã đọc quá hạn
	if _, err := notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "read", Value: 1},
			{Key: "updatedAt", Value: 1},
		},
		Options: options.Index().SetName("notification_read_updated"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// properties: ownerId — tra cứu bất động sản theo chủ nhà
	properties := db.Collection(global.MongoDB_ColNames.Properties)
	if _, err := properties.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerId", Value: 1}},
		Options: options.Index().SetName("property_owner"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
