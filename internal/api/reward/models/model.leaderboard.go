// Package models - LeaderboardRow thuộc domain Reward.
package models

// LeaderboardRow là một dòng bảng xếp hạng, derive tại thời điểm đọc,
// không lưu trong DB: điểm = số issue completed của owner × điểm thưởng mỗi issue.
// Idempotency của reward có được từ thiết kế (đếm issue completed), không cần
// counter riêng hay marker "đã thưởng".
type LeaderboardRow struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	Score  int64  `json:"score"`
	Rank   int    `json:"rank"`
}
