package propertysvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/ridhwankhan/RENTO-sub001/internal/api/base/service"
	"github.com/ridhwankhan/RENTO-sub001/internal/api/property/models"
	"github.com/ridhwankhan/RENTO-sub001/internal/common"
	"github.com/ridhwankhan/RENTO-sub001/internal/global"
)

// PropertyService là cấu trúc chứa các phương thức liên quan đến Property
type PropertyService struct {
	*basesvc.BaseServiceMongoImpl[models.Property]
}

// NewPropertyService tạo mới PropertyService
func NewPropertyService() (*PropertyService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Properties)
	if !exist {
		return nil, fmt.Errorf("failed to get properties collection: %v", common.ErrNotFound)
	}

	return &PropertyService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Property](collection),
	}, nil
}

// ResolveOwner resolve owner của một property theo propertyId.
// Issue lưu snapshot ownerId tại thời điểm tạo, không re-resolve khi owner đổi.
//
// Returns:
// - ownerId, ownerName của property
// - common.ErrNotFound nếu property không tồn tại
func (s *PropertyService) ResolveOwner(ctx context.Context, propertyID primitive.ObjectID) (primitive.ObjectID, string, error) {
	property, err := s.FindOneById(ctx, propertyID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return primitive.NilObjectID, "", common.NewError(
				common.ErrCodeDatabaseQuery,
				fmt.Sprintf("Không tìm thấy property với id '%s'", propertyID.Hex()),
				common.StatusNotFound,
				nil,
			)
		}
		return primitive.NilObjectID, "", err
	}
	return property.OwnerID, property.OwnerName, nil
}

// OwnerName lấy tên hiển thị của owner theo ownerId (dùng cho bảng xếp hạng).
// Owner có thể sở hữu nhiều property, lấy tên từ property bất kỳ; trả về rỗng nếu không có.
func (s *PropertyService) OwnerName(ctx context.Context, ownerID primitive.ObjectID) (string, error) {
	property, err := s.FindOne(ctx, map[string]interface{}{"ownerId": ownerID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return property.OwnerName, nil
}
