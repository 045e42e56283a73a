package models

import "testing"

func TestIssueStatusIsValid(t *testing.T) {
	for _, status := range []IssueStatus{StatusPending, StatusInProgress, StatusResolutionRequested, StatusCompleted} {
		if !status.IsValid() {
			t.Errorf("trạng thái '%s' phải hợp lệ", status)
		}
	}

	for _, status := range []IssueStatus{"", "done", "PENDING", "in-progress"} {
		if status.IsValid() {
			t.Errorf("trạng thái '%s' không được hợp lệ", status)
		}
	}
}

func TestTransitionFor(t *testing.T) {
	// Không có bước chuyển nào dẫn về pending; completed là trạng thái kết thúc
	if _, ok := TransitionFor(StatusPending); ok {
		t.Error("không được có bước chuyển dẫn tới pending")
	}
	if _, ok := TransitionFor("unknown"); ok {
		t.Error("trạng thái lạ không được có trong bảng chuyển")
	}

	tr, ok := TransitionFor(StatusInProgress)
	if !ok || tr.From != StatusPending || tr.Actor != RoleOwner {
		t.Errorf("bước chuyển tới in_progress sai: %+v", tr)
	}

	tr, ok = TransitionFor(StatusResolutionRequested)
	if !ok || tr.From != StatusInProgress || tr.Actor != RoleOwner {
		t.Errorf("bước chuyển tới resolution_requested sai: %+v", tr)
	}

	tr, ok = TransitionFor(StatusCompleted)
	if !ok || tr.From != StatusResolutionRequested || tr.Actor != RoleTenant {
		t.Errorf("bước chuyển tới completed sai: %+v", tr)
	}
}
