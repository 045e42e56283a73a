package global

import (
	"github.com/ridhwankhan/RENTO-sub001/config"
	"github.com/ridhwankhan/RENTO-sub001/internal/dispatch"
	"github.com/ridhwankhan/RENTO-sub001/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Properties    string // Tên collection cho bất động sản
	Issues        string // Tên collection cho sự cố
	Notifications string // Tên collection cho thông báo
}

// Các biến toàn cục
var Validate *validator.Validate                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                          // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration             // Cấu hình của server
var MongoDB_ColNames CollectionName = *new(CollectionName) // Tên các collection
var Dispatcher *dispatch.Dispatcher                        // Dispatcher ghi notification bất đồng bộ

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
