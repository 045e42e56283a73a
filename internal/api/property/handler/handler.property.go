package propertyhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/ridhwankhan/RENTO-sub001/internal/api/base/handler"
	propertydto "github.com/ridhwankhan/RENTO-sub001/internal/api/property/dto"
	"github.com/ridhwankhan/RENTO-sub001/internal/api/property/models"
	propertysvc "github.com/ridhwankhan/RENTO-sub001/internal/api/property/service"
	"github.com/ridhwankhan/RENTO-sub001/internal/common"
	"github.com/ridhwankhan/RENTO-sub001/internal/utility"
)

// PropertyHandler xử lý các request liên quan đến Property
type PropertyHandler struct {
	*basehdl.BaseHandler[models.Property, propertydto.PropertyCreateInput, propertydto.PropertyUpdateInput]
	propertyService *propertysvc.PropertyService
}

// NewPropertyHandler tạo mới PropertyHandler
func NewPropertyHandler() (*PropertyHandler, error) {
	propertyService, err := propertysvc.NewPropertyService()
	if err != nil {
		return nil, fmt.Errorf("failed to create property service: %v", err)
	}

	hdl := &PropertyHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Property, propertydto.PropertyCreateInput, propertydto.PropertyUpdateInput](propertyService),
		propertyService: propertyService,
	}
	return hdl, nil
}

// InsertOne thêm mới một property.
// Dữ liệu được parse từ request body (DTO PropertyCreateInput) và map sang Model trước khi thêm vào DB.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *PropertyHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input propertydto.PropertyCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		property := models.Property{
			OwnerID:   utility.String2ObjectID(input.OwnerID),
			OwnerName: input.OwnerName,
			Title:     input.Title,
			Address:   input.Address,
		}

		data, err := h.propertyService.InsertOne(c.Context(), property)
		h.HandleResponse(c, data, err)
		return nil
	})
}
