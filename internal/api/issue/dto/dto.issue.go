package issuedto

// IssueCreateInput dùng cho tạo issue (tầng transport)
type IssueCreateInput struct {
	TenantID    string `json:"tenantId" validate:"required,object_id"`
	PropertyID  string `json:"propertyId" validate:"required,object_id"`
	Title       string `json:"title" validate:"required,no_xss"`
	Description string `json:"description" validate:"required,no_xss"`
}

// IssueTransitionInput dùng cho chuyển trạng thái issue (tầng transport).
// Vai trò của actor không truyền lên mà được suy ra từ ownerId/tenantId của issue.
type IssueTransitionInput struct {
	TargetStatus string `json:"targetStatus" validate:"required,issue_status"`
	ActorID      string `json:"actorId" validate:"required,object_id"`
}

// IssueListInput dùng cho liệt kê issue theo filter (tầng transport).
// Các trường đều optional và kết hợp theo AND.
type IssueListInput struct {
	OwnerID    string `json:"ownerId" query:"ownerId" validate:"omitempty,object_id"`
	TenantID   string `json:"tenantId" query:"tenantId" validate:"omitempty,object_id"`
	PropertyID string `json:"propertyId" query:"propertyId" validate:"omitempty,object_id"`
	Status     string `json:"status" query:"status" validate:"omitempty,issue_status"`
}
