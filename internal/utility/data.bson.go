package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct thành bản đồ qua bson marshal.
// Dùng khi cần build update document từ struct mà vẫn giữ tên field theo tag bson.
// @params - struct cần chuyển đổi
// @returns - bản đồ và lỗi nếu có
func ToMap(s interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(s)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}
