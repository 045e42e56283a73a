package models

import (
	"strings"
	"testing"
)

func TestNewIssueMessage(t *testing.T) {
	msg := NewIssueMessage("Vòi nước bị rò rỉ")
	if !strings.Contains(msg, "Vòi nước bị rò rỉ") {
		t.Errorf("message phải chứa title của issue: %s", msg)
	}
}

func TestIssueUpdateMessage(t *testing.T) {
	msg := IssueUpdateMessage("Vòi nước bị rò rỉ", "in_progress")
	if !strings.Contains(msg, "Vòi nước bị rò rỉ") {
		t.Errorf("message phải chứa title của issue: %s", msg)
	}
	if !strings.Contains(msg, "in_progress") {
		t.Errorf("message phải chứa trạng thái mới: %s", msg)
	}
}
