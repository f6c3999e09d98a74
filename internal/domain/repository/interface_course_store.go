package repository

import (
	"context"

	"DateCourse-App/internal/domain/model"
)

// CourseStoreRepository 추천 결과를 TTL 과 함께 보관하는 저장소 계약
// 대화 레이어가 이후 턴에서 결과를 다시 조회할 때 사용한다
type CourseStoreRepository interface {
	SaveRecommendation(ctx context.Context, response *model.RecommendResponse, ttlHours int) error
	GetRecommendation(ctx context.Context, requestID string) (*model.RecommendResponse, error)
}
