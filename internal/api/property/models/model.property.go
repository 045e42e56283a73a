// Package models - Property thuộc domain Property.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property - Danh bạ bất động sản: mỗi property thuộc về một owner.
// OwnerID/OwnerName được dùng để resolve owner khi tenant tạo issue.
type Property struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID   primitive.ObjectID `json:"ownerId" bson:"ownerId" index:"single:1"`
	OwnerName string             `json:"ownerName" bson:"ownerName"`
	Title     string             `json:"title" bson:"title"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
