package rewardhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/ridhwankhan/RENTO-sub001/internal/api/base/handler"
	rewardsvc "github.com/ridhwankhan/RENTO-sub001/internal/api/reward/service"
	"github.com/ridhwankhan/RENTO-sub001/internal/common"
	"github.com/ridhwankhan/RENTO-sub001/internal/utility"
)

// RewardHandler xử lý các request liên quan đến Reward/Leaderboard
type RewardHandler struct {
	rewardService *rewardsvc.RewardService
}

// NewRewardHandler tạo mới RewardHandler
func NewRewardHandler() (*RewardHandler, error) {
	rewardService, err := rewardsvc.NewRewardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create reward service: %v", err)
	}

	return &RewardHandler{
		rewardService: rewardService,
	}, nil
}

// Leaderboard trả về bảng xếp hạng owner theo điểm thưởng tích lũy,
// derive tại thời điểm đọc từ issue completed.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *RewardHandler) Leaderboard(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.rewardService.Leaderboard(c.Context())
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// Score trả về điểm thưởng hiện tại của một owner.
// ownerId được truyền qua URI params.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *RewardHandler) Score(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := c.Params("ownerId")
		if !primitive.IsValidObjectID(id) {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		score, err := h.rewardService.Score(c.Context(), utility.String2ObjectID(id))
		basehdl.HandleResponse(c, fiber.Map{"ownerId": id, "score": score}, err)
		return nil
	})
}
