// Package rewardsvc - Test dựng bảng xếp hạng từ số issue completed.
package rewardsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildLeaderboard_Rong(t *testing.T) {
	rows := BuildLeaderboard(nil, 200)
	require.NotNil(t, rows, "BuildLeaderboard phải trả về slice rỗng, không phải nil")
	assert.Empty(t, rows)
}

func TestBuildLeaderboard_DiemVaThuTu(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	rows := BuildLeaderboard([]OwnerCompletion{
		{OwnerID: a, Count: 1},
		{OwnerID: b, Count: 5},
		{OwnerID: c, Count: 3},
	}, 200)

	require.Len(t, rows, 3)

	// Điểm giảm dần: 5×200, 3×200, 1×200
	assert.Equal(t, b.Hex(), rows[0].UserID, "hạng 1 phải là owner nhiều issue completed nhất")
	assert.Equal(t, int64(1000), rows[0].Score)
	assert.Equal(t, c.Hex(), rows[1].UserID)
	assert.Equal(t, int64(600), rows[1].Score)
	assert.Equal(t, a.Hex(), rows[2].UserID)
	assert.Equal(t, int64(200), rows[2].Score)

	// Rank liên tục bắt đầu từ 1
	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank, "rank dòng %d phải liên tục", i)
	}
}

func TestBuildLeaderboard_DongDiemXepTheoUserID(t *testing.T) {
	low := primitive.NilObjectID
	var highBytes [12]byte
	for i := range highBytes {
		highBytes[i] = 0xff
	}
	high := primitive.ObjectID(highBytes)

	// Đưa id lớn vào trước để chắc chắn thứ tự là do sắp xếp, không phải thứ tự input
	rows := BuildLeaderboard([]OwnerCompletion{
		{OwnerID: high, Count: 2},
		{OwnerID: low, Count: 2},
	}, 200)

	require.Len(t, rows, 2)
	assert.Equal(t, low.Hex(), rows[0].UserID, "đồng điểm phải xếp theo userId tăng dần")
	assert.Equal(t, high.Hex(), rows[1].UserID)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 2, rows[1].Rank, "rank đồng điểm vẫn phải liên tục")
}

func TestBuildLeaderboard_DiemTheoRewardPerIssue(t *testing.T) {
	a := primitive.NewObjectID()
	rows := BuildLeaderboard([]OwnerCompletion{{OwnerID: a, Count: 4}}, 50)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(200), rows[0].Score, "điểm phải là count×rewardPerIssue")
}
