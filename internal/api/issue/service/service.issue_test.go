// Package issuesvc - Test bảng chuyển trạng thái issue và filter liệt kê.
// ValidateTransition và BuildListFilter là hàm thuần nên test không cần DB.
package issuesvc

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ridhwankhan/RENTO-sub001/internal/api/issue/models"
	"github.com/ridhwankhan/RENTO-sub001/internal/common"
)

var (
	ownerID  = primitive.NewObjectID()
	tenantID = primitive.NewObjectID()
	otherID  = primitive.NewObjectID()
)

func issueWithStatus(status models.IssueStatus) models.Issue {
	return models.Issue{
		ID:       primitive.NewObjectID(),
		OwnerID:  ownerID,
		TenantID: tenantID,
		Status:   status,
	}
}

// assertErrorStatus kiểm tra error là *common.Error với HTTP status mong đợi
func assertErrorStatus(t *testing.T, err error, wantStatus int) *common.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("cần lỗi với status %d, nhận được nil", wantStatus)
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("lỗi không phải *common.Error: %v", err)
	}
	if customErr.StatusCode != wantStatus {
		t.Fatalf("status code sai: cần %d, nhận %d (message: %s)", wantStatus, customErr.StatusCode, customErr.Message)
	}
	return customErr
}

func TestValidateTransition_HappyPaths(t *testing.T) {
	cases := []struct {
		name       string
		from       models.IssueStatus
		target     models.IssueStatus
		actor      primitive.ObjectID
		wantActor  models.ActorRole
		wantAction string
	}{
		{"owner acknowledge", models.StatusPending, models.StatusInProgress, ownerID, models.RoleOwner, "acknowledge"},
		{"owner request confirmation", models.StatusInProgress, models.StatusResolutionRequested, ownerID, models.RoleOwner, "request_confirmation"},
		{"tenant confirm", models.StatusResolutionRequested, models.StatusCompleted, tenantID, models.RoleTenant, "confirm"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := ValidateTransition(issueWithStatus(tc.from), tc.target, tc.actor)
			if err != nil {
				t.Fatalf("transition hợp lệ nhưng bị từ chối: %v", err)
			}
			if tr.From != tc.from {
				t.Errorf("From sai: cần %s, nhận %s", tc.from, tr.From)
			}
			if tr.Actor != tc.wantActor {
				t.Errorf("Actor sai: cần %s, nhận %s", tc.wantActor, tr.Actor)
			}
			if tr.Action != tc.wantAction {
				t.Errorf("Action sai: cần %s, nhận %s", tc.wantAction, tr.Action)
			}
		})
	}
}

func TestValidateTransition_TargetTrungTrangThaiHienTai(t *testing.T) {
	// Chuyển về chính trạng thái hiện tại luôn là InvalidTransition (400),
	// kể cả khi actor đúng vai trò
	for _, status := range []models.IssueStatus{
		models.StatusPending,
		models.StatusInProgress,
		models.StatusResolutionRequested,
		models.StatusCompleted,
	} {
		t.Run(string(status), func(t *testing.T) {
			_, err := ValidateTransition(issueWithStatus(status), status, ownerID)
			customErr := assertErrorStatus(t, err, common.StatusBadRequest)
			if customErr.Code.Code != common.ErrCodeBusinessState.Code {
				t.Errorf("mã lỗi sai: cần %s, nhận %s", common.ErrCodeBusinessState.Code, customErr.Code.Code)
			}
		})
	}
}

func TestValidateTransition_ReConfirmIssueDaCompleted(t *testing.T) {
	// Tenant confirm lại issue đã completed: InvalidTransition chứ không phải Conflict,
	// vì target trùng trạng thái hiện tại
	_, err := ValidateTransition(issueWithStatus(models.StatusCompleted), models.StatusCompleted, tenantID)
	customErr := assertErrorStatus(t, err, common.StatusBadRequest)

	details, ok := customErr.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("details không phải map: %v", customErr.Details)
	}
	if details["currentStatus"] != string(models.StatusCompleted) {
		t.Errorf("details.currentStatus sai: cần %s, nhận %v", models.StatusCompleted, details["currentStatus"])
	}
}

func TestValidateTransition_TargetKhongCoTrongBang(t *testing.T) {
	// Không có bước chuyển nào dẫn tới pending
	_, err := ValidateTransition(issueWithStatus(models.StatusInProgress), models.StatusPending, ownerID)
	assertErrorStatus(t, err, common.StatusBadRequest)
}

func TestValidateTransition_SaiVaiTro(t *testing.T) {
	cases := []struct {
		name   string
		from   models.IssueStatus
		target models.IssueStatus
		actor  primitive.ObjectID
	}{
		// Tenant cố acknowledge (việc của owner)
		{"tenant acknowledge", models.StatusPending, models.StatusInProgress, tenantID},
		// Tenant cố request confirmation
		{"tenant request confirmation", models.StatusInProgress, models.StatusResolutionRequested, tenantID},
		// Owner cố confirm (việc của tenant)
		{"owner confirm", models.StatusResolutionRequested, models.StatusCompleted, ownerID},
		// Người ngoài issue
		{"nguoi ngoai acknowledge", models.StatusPending, models.StatusInProgress, otherID},
		{"nguoi ngoai confirm", models.StatusResolutionRequested, models.StatusCompleted, otherID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateTransition(issueWithStatus(tc.from), tc.target, tc.actor)
			customErr := assertErrorStatus(t, err, common.StatusForbidden)
			if customErr.Code.Code != common.ErrCodeBusinessOperation.Code {
				t.Errorf("mã lỗi sai: cần %s, nhận %s", common.ErrCodeBusinessOperation.Code, customErr.Code.Code)
			}
		})
	}
}

func TestValidateTransition_KiemTraVaiTroTruocTrangThaiNguon(t *testing.T) {
	// Owner cố confirm completed khi issue còn pending: lỗi phải là Forbidden
	// (sai vai trò), không phải InvalidTransition, vì vai trò được kiểm tra trước
	_, err := ValidateTransition(issueWithStatus(models.StatusPending), models.StatusCompleted, ownerID)
	assertErrorStatus(t, err, common.StatusForbidden)
}

func TestValidateTransition_DungVaiTroSaiTrangThaiNguon(t *testing.T) {
	cases := []struct {
		name   string
		from   models.IssueStatus
		target models.IssueStatus
		actor  primitive.ObjectID
	}{
		// Tenant confirm khi issue chưa tới resolution_requested
		{"confirm tu pending", models.StatusPending, models.StatusCompleted, tenantID},
		{"confirm tu in_progress", models.StatusInProgress, models.StatusCompleted, tenantID},
		// Owner acknowledge khi issue đã qua pending
		{"acknowledge tu resolution_requested", models.StatusResolutionRequested, models.StatusInProgress, ownerID},
		{"acknowledge tu completed", models.StatusCompleted, models.StatusInProgress, ownerID},
		// Owner request confirmation khi issue chưa in_progress
		{"request confirmation tu pending", models.StatusPending, models.StatusResolutionRequested, ownerID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateTransition(issueWithStatus(tc.from), tc.target, tc.actor)
			customErr := assertErrorStatus(t, err, common.StatusBadRequest)

			// currentStatus trong details để client biết trạng thái thực tế
			details, ok := customErr.Details.(map[string]interface{})
			if !ok {
				t.Fatalf("details không phải map: %v", customErr.Details)
			}
			if details["currentStatus"] != string(tc.from) {
				t.Errorf("details.currentStatus sai: cần %s, nhận %v", tc.from, details["currentStatus"])
			}
		})
	}
}

func TestBuildListFilter(t *testing.T) {
	propertyID := primitive.NewObjectID()

	t.Run("khong co dieu kien", func(t *testing.T) {
		filter := BuildListFilter(primitive.NilObjectID, primitive.NilObjectID, primitive.NilObjectID, "")
		if len(filter) != 0 {
			t.Errorf("filter rỗng mới đúng, nhận: %v", filter)
		}
	})

	t.Run("tung truong rieng le", func(t *testing.T) {
		filter := BuildListFilter(ownerID, primitive.NilObjectID, primitive.NilObjectID, "")
		if len(filter) != 1 || filter["ownerId"] != ownerID {
			t.Errorf("filter ownerId sai: %v", filter)
		}

		filter = BuildListFilter(primitive.NilObjectID, tenantID, primitive.NilObjectID, "")
		if len(filter) != 1 || filter["tenantId"] != tenantID {
			t.Errorf("filter tenantId sai: %v", filter)
		}

		filter = BuildListFilter(primitive.NilObjectID, primitive.NilObjectID, propertyID, "")
		if len(filter) != 1 || filter["propertyId"] != propertyID {
			t.Errorf("filter propertyId sai: %v", filter)
		}

		filter = BuildListFilter(primitive.NilObjectID, primitive.NilObjectID, primitive.NilObjectID, models.StatusPending)
		if len(filter) != 1 || filter["status"] != models.StatusPending {
			t.Errorf("filter status sai: %v", filter)
		}
	})

	t.Run("ket hop AND day du", func(t *testing.T) {
		filter := BuildListFilter(ownerID, tenantID, propertyID, models.StatusCompleted)
		if len(filter) != 4 {
			t.Fatalf("filter phải có 4 điều kiện, nhận: %v", filter)
		}
		if filter["ownerId"] != ownerID || filter["tenantId"] != tenantID ||
			filter["propertyId"] != propertyID || filter["status"] != models.StatusCompleted {
			t.Errorf("giá trị filter sai: %v", filter)
		}
	})
}
