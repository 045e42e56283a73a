// Package router đăng ký các route thuộc domain Issue.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	issuehdl "github.com/ridhwankhan/RENTO-sub001/internal/api/issue/handler"
	"github.com/ridhwankhan/RENTO-sub001/internal/api/middleware"
	apirouter "github.com/ridhwankhan/RENTO-sub001/internal/api/router"
)

// Register đăng ký tất cả route issue lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	issueHandler, err := issuehdl.NewIssueHandler()
	if err != nil {
		return fmt.Errorf("create issue handler: %w", err)
	}

	actorMiddleware := middleware.ActorContextMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/issue", "POST", "/insert-one", []fiber.Handler{actorMiddleware}, issueHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, "/issue", "POST", "/transition/:id", []fiber.Handler{actorMiddleware}, issueHandler.Transition)
	apirouter.RegisterRouteWithMiddleware(v1, "/issue", "GET", "/list", []fiber.Handler{actorMiddleware}, issueHandler.List)
	r.RegisterCRUDRoutes(v1, "/issue", issueHandler, apirouter.ReadOnlyConfig)
	return nil
}
