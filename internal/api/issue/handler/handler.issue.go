package issuehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/ridhwankhan/RENTO-sub001/internal/api/base/handler"
	issuedto "github.com/ridhwankhan/RENTO-sub001/internal/api/issue/dto"
	"github.com/ridhwankhan/RENTO-sub001/internal/api/issue/models"
	issuesvc "github.com/ridhwankhan/RENTO-sub001/internal/api/issue/service"
	"github.com/ridhwankhan/RENTO-sub001/internal/common"
	"github.com/ridhwankhan/RENTO-sub001/internal/logger"
	"github.com/ridhwankhan/RENTO-sub001/internal/utility"
)

// IssueHandler xử lý các request liên quan đến Issue
type IssueHandler struct {
	*basehdl.BaseHandler[models.Issue, issuedto.IssueCreateInput, issuedto.IssueTransitionInput]
	issueService *issuesvc.IssueService
}

// NewIssueHandler tạo mới IssueHandler
func NewIssueHandler() (*IssueHandler, error) {
	issueService, err := issuesvc.NewIssueService()
	if err != nil {
		return nil, fmt.Errorf("failed to create issue service: %v", err)
	}

	hdl := &IssueHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Issue, issuedto.IssueCreateInput, issuedto.IssueTransitionInput](issueService),
		issueService: issueService,
	}
	return hdl, nil
}

// InsertOne tạo mới một issue.
// Dữ liệu được parse từ request body (DTO IssueCreateInput); ownerId được
// service resolve từ property, không nhận từ client.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *IssueHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input issuedto.IssueCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		data, err := h.issueService.Create(
			c.Context(),
			utility.String2ObjectID(input.TenantID),
			utility.String2ObjectID(input.PropertyID),
			input.Title,
			input.Description,
		)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Transition chuyển trạng thái một issue.
// ID issue truyền qua URI params, target status và actor trong request body.
// Vai trò của actor được suy ra từ ownerId/tenantId của issue, không tin client.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *IssueHandler) Transition(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input issuedto.IssueTransitionInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		fromStatus := ""
		data, err := h.issueService.ApplyTransition(
			c.Context(),
			utility.String2ObjectID(id),
			models.IssueStatus(input.TargetStatus),
			utility.String2ObjectID(input.ActorID),
		)
		if err == nil {
			tr, ok := models.TransitionFor(data.Status)
			if ok {
				fromStatus = string(tr.From)
			}
			logger.LogTransition(id, fromStatus, string(data.Status), c, map[string]interface{}{
				"actorId": input.ActorID,
			})
		}

		h.HandleResponse(c, data, err)
		return nil
	})
}

// List liệt kê issue theo filter (ownerId, tenantId, propertyId, status),
// các trường optional kết hợp theo AND, mới nhất trước.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *IssueHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := issuedto.IssueListInput{
			OwnerID:    c.Query("ownerId"),
			TenantID:   c.Query("tenantId"),
			PropertyID: c.Query("propertyId"),
			Status:     c.Query("status"),
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.issueService.List(
			c.Context(),
			utility.String2ObjectID(input.OwnerID),
			utility.String2ObjectID(input.TenantID),
			utility.String2ObjectID(input.PropertyID),
			models.IssueStatus(input.Status),
		)
		h.HandleResponse(c, data, err)
		return nil
	})
}
