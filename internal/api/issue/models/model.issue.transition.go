package models

// ActorRole là vai trò của người thao tác trên issue
type ActorRole string

const (
	RoleOwner  ActorRole = "owner"
	RoleTenant ActorRole = "tenant"
)

// Transition mô tả một bước chuyển trạng thái hợp lệ:
// từ trạng thái From, vai trò Actor thực hiện Action để tới trạng thái đích.
type Transition struct {
	From   IssueStatus
	Actor  ActorRole
	Action string
}

// transitionTable là bảng chuyển trạng thái trung tâm, key theo trạng thái ĐÍCH.
// Mọi đường mutation đều phải tra bảng này, không so sánh chuỗi status rải rác ở call site.
// Không có bước nào được nhảy cóc trạng thái; completed là trạng thái kết thúc.
var transitionTable = map[IssueStatus]Transition{
	StatusInProgress:          {From: StatusPending, Actor: RoleOwner, Action: "acknowledge"},
	StatusResolutionRequested: {From: StatusInProgress, Actor: RoleOwner, Action: "request_confirmation"},
	StatusCompleted:           {From: StatusResolutionRequested, Actor: RoleTenant, Action: "confirm"},
}

// TransitionFor tra bảng chuyển trạng thái theo trạng thái đích.
// Trả về false nếu không có bước chuyển nào dẫn tới target (ví dụ target là pending).
func TransitionFor(target IssueStatus) (Transition, bool) {
	tr, ok := transitionTable[target]
	return tr, ok
}
