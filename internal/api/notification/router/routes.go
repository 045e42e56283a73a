// Package router đăng ký các route thuộc domain Notification.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/ridhwankhan/RENTO-sub001/internal/api/middleware"
	notifhdl "github.com/ridhwankhan/RENTO-sub001/internal/api/notification/handler"
	apirouter "github.com/ridhwankhan/RENTO-sub001/internal/api/router"
)

// Register đăng ký tất cả route notification lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	notificationHandler, err := notifhdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("create notification handler: %w", err)
	}

	actorMiddleware := middleware.ActorContextMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", "GET", "/list", []fiber.Handler{actorMiddleware}, notificationHandler.ListForUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", "PUT", "/mark-read", []fiber.Handler{actorMiddleware}, notificationHandler.MarkRead)
	r.RegisterCRUDRoutes(v1, "/notification", notificationHandler, apirouter.ListOnlyConfig)
	return nil
}
