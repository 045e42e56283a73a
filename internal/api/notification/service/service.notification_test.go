package notifsvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ridhwankhan/RENTO-sub001/internal/common"
)

func TestListSort_CoTieBreakTheoID(t *testing.T) {
	// createdAt lưu theo UnixMilli nên hai notification ghi trong cùng một
	// mili-giây có key bằng nhau; sort phải có tie-break theo _id để thứ tự
	// đọc luôn xác định và khớp thứ tự consumer ghi
	sort := listSort()
	if len(sort) != 2 {
		t.Fatalf("sort phải có đúng 2 key (createdAt, _id), nhận: %v", sort)
	}
	if sort[0].Key != "createdAt" || sort[0].Value != -1 {
		t.Errorf("key sort đầu tiên phải là createdAt giảm dần, nhận: %v", sort[0])
	}
	if sort[1].Key != "_id" || sort[1].Value != -1 {
		t.Errorf("tie-break phải là _id giảm dần, nhận: %v", sort[1])
	}
}

func TestMarkRead_KhongCoIdsVaKhongAll(t *testing.T) {
	// Không có ids và all=false phải bị chặn trước khi chạm tới DB
	s := &NotificationService{}
	count, err := s.MarkRead(context.Background(), primitive.NewObjectID(), nil, false)
	if count != 0 {
		t.Errorf("count phải là 0, nhận %d", count)
	}
	if err == nil {
		t.Fatal("cần lỗi validation, nhận được nil")
	}

	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("lỗi không phải *common.Error: %v", err)
	}
	if customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("status code sai: cần %d, nhận %d", common.StatusBadRequest, customErr.StatusCode)
	}
}
