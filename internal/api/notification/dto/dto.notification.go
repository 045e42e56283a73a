package notifdto

// NotificationMarkReadInput dùng cho đánh dấu notification đã đọc (tầng transport).
// Truyền danh sách notificationIds hoặc all=true để đánh dấu tất cả của user.
type NotificationMarkReadInput struct {
	UserID          string   `json:"userId" validate:"required,object_id"`
	NotificationIDs []string `json:"notificationIds,omitempty" validate:"omitempty,dive,object_id"`
	All             bool     `json:"all"`
}

// NotificationListInput dùng cho liệt kê notification của một user (tầng transport)
type NotificationListInput struct {
	UserID string `json:"userId" query:"userId" validate:"required,object_id"`
}
