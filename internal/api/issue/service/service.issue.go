package issuesvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/ridhwankhan/RENTO-sub001/internal/api/base/service"
	"github.com/ridhwankhan/RENTO-sub001/internal/api/issue/models"
	notifmodels "github.com/ridhwankhan/RENTO-sub001/internal/api/notification/models"
	propertysvc "github.com/ridhwankhan/RENTO-sub001/internal/api/property/service"
	"github.com/ridhwankhan/RENTO-sub001/internal/common"
	"github.com/ridhwankhan/RENTO-sub001/internal/dispatch"
	"github.com/ridhwankhan/RENTO-sub001/internal/global"
	"github.com/ridhwankhan/RENTO-sub001/internal/utility"
)

// IssueService là cấu trúc chứa các phương thức liên quan đến Issue.
// Mọi mutation trạng thái đều đi qua ApplyTransition, không sửa status trực tiếp.
type IssueService struct {
	*basesvc.BaseServiceMongoImpl[models.Issue]
	propertyService *propertysvc.PropertyService
	dispatcher      *dispatch.Dispatcher
}

// NewIssueService tạo mới IssueService
func NewIssueService() (*IssueService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Issues)
	if !exist {
		return nil, fmt.Errorf("failed to get issues collection: %v", common.ErrNotFound)
	}

	propertyService, err := propertysvc.NewPropertyService()
	if err != nil {
		return nil, fmt.Errorf("failed to create property service: %v", err)
	}

	return &IssueService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Issue](collection),
		propertyService:      propertyService,
		dispatcher:           global.Dispatcher,
	}, nil
}

// Create tạo mới một issue do tenant báo cáo.
// OwnerId được resolve từ property tại thời điểm tạo và không đổi về sau.
// Sau khi ghi thành công, xếp hàng notification new_issue cho owner (best-effort).
//
// Returns:
// - Issue đã tạo với status=pending, completedAt=null
// - 400 nếu title/description rỗng, 404 nếu property không tồn tại
func (s *IssueService) Create(ctx context.Context, tenantID, propertyID primitive.ObjectID, title, description string) (models.Issue, error) {
	var zero models.Issue

	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			"Title và description không được để trống",
			common.StatusBadRequest,
			nil,
		)
	}

	ownerID, _, err := s.propertyService.ResolveOwner(ctx, propertyID)
	if err != nil {
		return zero, err
	}

	issue := models.Issue{
		TenantID:    tenantID,
		PropertyID:  propertyID,
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
	}

	created, err := s.InsertOne(ctx, issue)
	if err != nil {
		return zero, err
	}

	// Thông báo cho owner sau khi issue đã ghi xong
	if s.dispatcher != nil {
		issueID := created.ID
		s.dispatcher.Dispatch(ownerID, notifmodels.TypeNewIssue, notifmodels.NewIssueMessage(created.Title), &issueID)
	}

	return created, nil
}

// BuildListFilter xây filter liệt kê issue: các trường optional kết hợp theo AND.
// ObjectID zero và status rỗng được bỏ qua.
func BuildListFilter(ownerID, tenantID, propertyID primitive.ObjectID, status models.IssueStatus) bson.M {
	filter := bson.M{}
	if !ownerID.IsZero() {
		filter["ownerId"] = ownerID
	}
	if !tenantID.IsZero() {
		filter["tenantId"] = tenantID
	}
	if !propertyID.IsZero() {
		filter["propertyId"] = propertyID
	}
	if status != "" {
		filter["status"] = status
	}
	return filter
}

// List liệt kê issue theo filter, mới nhất trước theo createdAt
func (s *IssueService) List(ctx context.Context, ownerID, tenantID, propertyID primitive.ObjectID, status models.IssueStatus) ([]models.Issue, error) {
	filter := BuildListFilter(ownerID, tenantID, propertyID, status)
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	issues, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	if issues == nil {
		issues = []models.Issue{}
	}
	return issues, nil
}

// ValidateTransition kiểm tra một bước chuyển trạng thái trên issue đã load,
// tách riêng để test không cần DB. Thứ tự kiểm tra:
// 1. Target trùng trạng thái hiện tại (gồm re-confirm issue đã completed) → InvalidTransition
// 2. Không có bước chuyển nào dẫn tới target → InvalidTransition
// 3. Actor không phải bên được yêu cầu (suy từ ownerId/tenantId) → Forbidden
// 4. Trạng thái hiện tại không phải trạng thái nguồn của bước chuyển → InvalidTransition
//
// Trả về Transition đã tra bảng khi hợp lệ.
func ValidateTransition(issue models.Issue, target models.IssueStatus, actorID primitive.ObjectID) (models.Transition, error) {
	var zero models.Transition

	if target == issue.Status {
		return zero, common.NewInvalidTransitionError(
			fmt.Sprintf("Issue đã ở trạng thái '%s', không thể chuyển lại", issue.Status),
			string(issue.Status),
		)
	}

	tr, ok := models.TransitionFor(target)
	if !ok {
		return zero, common.NewInvalidTransitionError(
			fmt.Sprintf("Không có bước chuyển nào dẫn tới trạng thái '%s'", target),
			string(issue.Status),
		)
	}

	var requiredID primitive.ObjectID
	if tr.Actor == models.RoleOwner {
		requiredID = issue.OwnerID
	} else {
		requiredID = issue.TenantID
	}
	if actorID != requiredID {
		return zero, common.NewForbiddenError(
			fmt.Sprintf("Chỉ %s của issue mới được thực hiện '%s'", tr.Actor, tr.Action),
			string(tr.Actor),
		)
	}

	if issue.Status != tr.From {
		return zero, common.NewInvalidTransitionError(
			fmt.Sprintf("Không thể chuyển từ trạng thái '%s' sang '%s'", issue.Status, target),
			string(issue.Status),
		)
	}

	return tr, nil
}

// ApplyTransition áp một bước chuyển trạng thái lên issue.
// Ghi bằng compare-and-set trên status hiện tại: request song song trên cùng issue
// bị serialize, request thua trả Conflict kèm trạng thái hiện tại thay vì ghi đè.
// Sau khi ghi thành công, xếp hàng notification issue_update cho bên còn lại.
//
// Returns:
// - Issue sau khi chuyển trạng thái
// - 404 nếu issue không tồn tại, 403/400/409 theo taxonomy lỗi chuyển trạng thái
func (s *IssueService) ApplyTransition(ctx context.Context, issueID primitive.ObjectID, target models.IssueStatus, actorID primitive.ObjectID) (models.Issue, error) {
	var zero models.Issue

	issue, err := s.FindOneById(ctx, issueID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.NewError(
				common.ErrCodeDatabaseQuery,
				fmt.Sprintf("Không tìm thấy issue với id '%s'", issueID.Hex()),
				common.StatusNotFound,
				nil,
			)
		}
		return zero, err
	}

	tr, err := ValidateTransition(issue, target, actorID)
	if err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": target},
	}
	if target == models.StatusCompleted {
		// completedAt chỉ set đúng một lần, tại bước chuyển vào completed
		update.Set["completedAt"] = utility.CurrentTimeInMilli()
	}

	// Compare-and-set: filter theo cả _id và trạng thái nguồn
	casFilter := bson.M{"_id": issueID, "status": tr.From}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	updated, err := s.FindOneAndUpdate(ctx, casFilter, update, opts)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// CAS miss: issue tồn tại nhưng trạng thái đã bị request khác thay đổi
			current, findErr := s.FindOneById(ctx, issueID)
			if findErr == nil {
				return zero, common.NewStatusConflictError(string(tr.From), string(current.Status))
			}
			return zero, common.NewError(
				common.ErrCodeDatabaseQuery,
				fmt.Sprintf("Không tìm thấy issue với id '%s'", issueID.Hex()),
				common.StatusNotFound,
				nil,
			)
		}
		return zero, err
	}

	// Thông báo cho bên còn lại (owner↔tenant) sau khi transition đã commit
	if s.dispatcher != nil {
		recipientID := updated.OwnerID
		if tr.Actor == models.RoleOwner {
			recipientID = updated.TenantID
		}
		s.dispatcher.Dispatch(recipientID, notifmodels.TypeIssueUpdate, notifmodels.IssueUpdateMessage(updated.Title, string(target)), &updated.ID)
	}

	return updated, nil
}
