package propertydto

// PropertyCreateInput dùng cho tạo property (tầng transport)
type PropertyCreateInput struct {
	OwnerID   string `json:"ownerId" validate:"required,object_id"`
	OwnerName string `json:"ownerName" validate:"required,no_xss"`
	Title     string `json:"title" validate:"required,no_xss"`
	Address   string `json:"address,omitempty" validate:"omitempty,no_xss"`
}

// PropertyUpdateInput dùng cho cập nhật property (tầng transport)
type PropertyUpdateInput struct {
	OwnerName string `json:"ownerName" validate:"omitempty,no_xss"`
	Title     string `json:"title" validate:"omitempty,no_xss"`
	Address   string `json:"address,omitempty" validate:"omitempty,no_xss"`
}
