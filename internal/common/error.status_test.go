// Package common - Test phân loại lỗi MongoDB sang lỗi hệ thống.
package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	if err := ConvertMongoError(nil); err != nil {
		t.Errorf("nil phải giữ nguyên nil, nhận: %v", err)
	}
}

func TestConvertMongoError_ErrNoDocuments(t *testing.T) {
	// FindOneAndUpdate trả mongo.ErrNoDocuments khi compare-and-set trượt trạng thái;
	// phải map sang ErrNotFound để caller phân biệt được với lỗi hạ tầng (500)
	err := ConvertMongoError(mongo.ErrNoDocuments)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("mongo.ErrNoDocuments phải map sang ErrNotFound, nhận: %v", err)
	}

	// Cả khi bị wrap
	wrapped := ConvertMongoError(fmt.Errorf("find one and update: %w", mongo.ErrNoDocuments))
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatalf("mongo.ErrNoDocuments bị wrap vẫn phải map sang ErrNotFound, nhận: %v", wrapped)
	}
}

func TestConvertMongoError_GiuNguyenErrNotFound(t *testing.T) {
	if err := ConvertMongoError(ErrNotFound); !errors.Is(err, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, nhận: %v", err)
	}
}

func TestNewStatusConflictError(t *testing.T) {
	err := NewStatusConflictError("in_progress", "resolution_requested")

	var customErr *Error
	if !errors.As(err, &customErr) {
		t.Fatalf("lỗi không phải *common.Error: %v", err)
	}
	if customErr.StatusCode != StatusConflict {
		t.Errorf("status code phải là %d, nhận %d", StatusConflict, customErr.StatusCode)
	}
	if customErr.Code.Code != ErrCodeBusinessState.Code {
		t.Errorf("mã lỗi phải là %s, nhận %s", ErrCodeBusinessState.Code, customErr.Code.Code)
	}

	// Trạng thái mong đợi và hiện tại phải có trong details để client retry đúng
	details, ok := customErr.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("details không phải map: %v", customErr.Details)
	}
	if details["expectedStatus"] != "in_progress" {
		t.Errorf("details.expectedStatus sai: %v", details["expectedStatus"])
	}
	if details["currentStatus"] != "resolution_requested" {
		t.Errorf("details.currentStatus sai: %v", details["currentStatus"])
	}
}
