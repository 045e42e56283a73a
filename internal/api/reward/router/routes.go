// Package router đăng ký các route thuộc domain Reward.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/ridhwankhan/RENTO-sub001/internal/api/middleware"
	rewardhdl "github.com/ridhwankhan/RENTO-sub001/internal/api/reward/handler"
	apirouter "github.com/ridhwankhan/RENTO-sub001/internal/api/router"
)

// Register đăng ký tất cả route reward lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	rewardHandler, err := rewardhdl.NewRewardHandler()
	if err != nil {
		return fmt.Errorf("create reward handler: %w", err)
	}

	actorMiddleware := middleware.ActorContextMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/reward", "GET", "/leaderboard", []fiber.Handler{actorMiddleware}, rewardHandler.Leaderboard)
	apirouter.RegisterRouteWithMiddleware(v1, "/reward", "GET", "/score/:ownerId", []fiber.Handler{actorMiddleware}, rewardHandler.Score)
	return nil
}
