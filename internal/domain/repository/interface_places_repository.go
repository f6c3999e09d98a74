package repository

import (
	"context"

	"DateCourse-App/internal/domain/model"
)

// PlaceSearchRepository 장소 벡터 인덱스에 대한 검색 계약
// 코어 입장에서 인덱스는 읽기 전용 공유 자원이다
type PlaceSearchRepository interface {
	// SearchSimilar 지오 반경과 카테고리로 제한한 최근접 이웃 검색 (코사인 유사도 내림차순)
	SearchSimilar(ctx context.Context, queryVector []float32, limit int, center model.Coordinates, radiusMeters int, category string) ([]*model.Place, error)

	// GetByID 장소 단건 조회
	GetByID(ctx context.Context, placeID string) (*model.Place, error)
}
