package notifhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/ridhwankhan/RENTO-sub001/internal/api/base/handler"
	notifdto "github.com/ridhwankhan/RENTO-sub001/internal/api/notification/dto"
	notifmodels "github.com/ridhwankhan/RENTO-sub001/internal/api/notification/models"
	notifsvc "github.com/ridhwankhan/RENTO-sub001/internal/api/notification/service"
	"github.com/ridhwankhan/RENTO-sub001/internal/utility"
)

// NotificationHandler xử lý các request liên quan đến Notification
type NotificationHandler struct {
	*basehdl.BaseHandler[notifmodels.Notification, notifdto.NotificationMarkReadInput, notifdto.NotificationMarkReadInput]
	notificationService *notifsvc.NotificationService
}

// NewNotificationHandler tạo mới NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}

	hdl := &NotificationHandler{
		BaseHandler:         basehdl.NewBaseHandler[notifmodels.Notification, notifdto.NotificationMarkReadInput, notifdto.NotificationMarkReadInput](notificationService),
		notificationService: notificationService,
	}
	return hdl, nil
}

// ListForUser liệt kê notification của một user, mới nhất trước.
// userId được truyền qua query string.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *NotificationHandler) ListForUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input notifdto.NotificationListInput
		input.UserID = c.Query("userId")
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.notificationService.ListForUser(c.Context(), utility.String2ObjectID(input.UserID))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// MarkRead đánh dấu notification đã đọc, trả về số lượng đã cập nhật.
// Body: {userId, notificationIds[] | all: true}. Idempotent.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input notifdto.NotificationMarkReadInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ids := lo.Map(input.NotificationIDs, func(id string, _ int) primitive.ObjectID {
			return utility.String2ObjectID(id)
		})

		count, err := h.notificationService.MarkRead(c.Context(), utility.String2ObjectID(input.UserID), ids, input.All)
		h.HandleResponse(c, fiber.Map{"count": count}, err)
		return nil
	})
}
