package rewardsvc

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	issuemodels "github.com/ridhwankhan/RENTO-sub001/internal/api/issue/models"
	propertysvc "github.com/ridhwankhan/RENTO-sub001/internal/api/property/service"
	rewardmodels "github.com/ridhwankhan/RENTO-sub001/internal/api/reward/models"
	"github.com/ridhwankhan/RENTO-sub001/internal/common"
	"github.com/ridhwankhan/RENTO-sub001/internal/global"
	"github.com/ridhwankhan/RENTO-sub001/internal/utility"
)

// OwnerCompletion là số issue completed của một owner (kết quả aggregation)
type OwnerCompletion struct {
	OwnerID primitive.ObjectID `bson:"_id"`
	Count   int64              `bson:"count"`
}

// RewardService derive điểm thưởng và bảng xếp hạng từ Issue Store.
// Không có collection reward riêng: điểm là view thuần trên issue completed,
// nên award lặp lại cho cùng một issue không bao giờ double điểm.
type RewardService struct {
	issueCollection *mongo.Collection
	propertyService *propertysvc.PropertyService
	rewardPerIssue  int64
}

// NewRewardService tạo mới RewardService
func NewRewardService() (*RewardService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Issues)
	if !exist {
		return nil, fmt.Errorf("failed to get issues collection: %v", common.ErrNotFound)
	}

	propertyService, err := propertysvc.NewPropertyService()
	if err != nil {
		return nil, fmt.Errorf("failed to create property service: %v", err)
	}

	rewardPerIssue := int64(200)
	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.RewardPerIssue > 0 {
		rewardPerIssue = int64(global.MongoDB_ServerConfig.RewardPerIssue)
	}

	return &RewardService{
		issueCollection: collection,
		propertyService: propertyService,
		rewardPerIssue:  rewardPerIssue,
	}, nil
}

// BuildLeaderboard dựng bảng xếp hạng từ số issue completed của từng owner.
// Sắp theo điểm giảm dần, điểm bằng nhau thì ổn định theo ownerId tăng dần;
// rank liên tục bắt đầu từ 1. Tách thành hàm thuần để test không cần DB.
func BuildLeaderboard(completions []OwnerCompletion, rewardPerIssue int64) []rewardmodels.LeaderboardRow {
	rows := make([]rewardmodels.LeaderboardRow, 0, len(completions))
	for _, completion := range completions {
		rows = append(rows, rewardmodels.LeaderboardRow{
			UserID: completion.OwnerID.Hex(),
			Score:  completion.Count * rewardPerIssue,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].UserID < rows[j].UserID
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// Leaderboard tính bảng xếp hạng tại thời điểm đọc bằng một aggregation duy nhất
// trên issue completed: group theo ownerId rồi nhân với điểm thưởng mỗi issue.
// Đọc không lấy lock, an toàn chạy song song với transition.
func (s *RewardService) Leaderboard(ctx context.Context) ([]rewardmodels.LeaderboardRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": issuemodels.StatusCompleted}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$ownerId",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.issueCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var completions []OwnerCompletion
	if err := cursor.All(ctx, &completions); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	rows := BuildLeaderboard(completions, s.rewardPerIssue)

	// Gắn tên hiển thị từ danh bạ property; không tìm thấy thì để trống
	for i := range rows {
		name, err := s.propertyService.OwnerName(ctx, utility.String2ObjectID(rows[i].UserID))
		if err != nil {
			return nil, err
		}
		rows[i].Name = name
	}

	return rows, nil
}

// Score trả về điểm thưởng hiện tại của một owner (đếm issue completed × điểm mỗi issue)
func (s *RewardService) Score(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	count, err := s.issueCollection.CountDocuments(ctx, bson.M{
		"ownerId": ownerID,
		"status":  issuemodels.StatusCompleted,
	})
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count * s.rewardPerIssue, nil
}
