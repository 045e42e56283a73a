package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActorContextMiddleware middleware để quản lý actor context.
// Xác thực được thực hiện ở gateway phía trước, service này chỉ nhận danh tính
// người thao tác qua header:
// - Đọc X-Actor-ID từ header (ObjectID hex của user đang thao tác)
// - Validate định dạng ObjectID
// - Lưu userID vào context để audit log và các handler sử dụng
//
// Header không có hoặc không hợp lệ thì vẫn cho request đi tiếp: các thao tác
// cần actor (chuyển trạng thái issue) tự nhận actorId trong body và validate riêng.
func ActorContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		actorIDStr := c.Get("X-Actor-ID")
		if actorIDStr == "" {
			// Không có header, có thể là route không cần actor
			return c.Next()
		}

		if _, err := primitive.ObjectIDFromHex(actorIDStr); err != nil {
			// Actor ID không hợp lệ, bỏ qua không set context
			return c.Next()
		}

		// Lưu vào context cho audit log (logger.LogAction đọc key này)
		c.Locals("userID", actorIDStr)

		return c.Next()
	}
}
