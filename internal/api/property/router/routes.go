// Package router đăng ký các route thuộc domain Property.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/ridhwankhan/RENTO-sub001/internal/api/middleware"
	propertyhdl "github.com/ridhwankhan/RENTO-sub001/internal/api/property/handler"
	apirouter "github.com/ridhwankhan/RENTO-sub001/internal/api/router"
)

// Register đăng ký tất cả route property lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	propertyHandler, err := propertyhdl.NewPropertyHandler()
	if err != nil {
		return fmt.Errorf("create property handler: %w", err)
	}

	actorMiddleware := middleware.ActorContextMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/property", "POST", "/insert-one", []fiber.Handler{actorMiddleware}, propertyHandler.InsertOne)
	r.RegisterCRUDRoutes(v1, "/property", propertyHandler, apirouter.ReadOnlyConfig)
	return nil
}
