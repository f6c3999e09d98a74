package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"DateCourse-App/internal/domain/model"
	"DateCourse-App/internal/domain/repository"
	"DateCourse-App/internal/infrastructure/database"
)

// SupabasePlacesRepository Supabase RPC(match_places) 기반 PlaceSearchRepository 구현.
// PostgreSQL 직접 연결을 쓸 수 없는 환경에서의 대체 구현이다.
type SupabasePlacesRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePlacesRepository(client *database.SupabaseClient) repository.PlaceSearchRepository {
	return &SupabasePlacesRepository{
		client: client,
	}
}

// matchPlaceRow match_places RPC 함수의 한 행
type matchPlaceRow struct {
	PlaceID         string  `json:"place_id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Description     string  `json:"description"`
	Address         *string `json:"address"`
	Price           *int    `json:"price"`
	SimilarityScore float64 `json:"similarity_score"`
}

func (row *matchPlaceRow) toPlace() *model.Place {
	place := &model.Place{
		PlaceID:  row.PlaceID,
		Name:     row.Name,
		Category: row.Category,
		Coordinates: model.Coordinates{
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		},
		Description:     row.Description,
		SimilarityScore: row.SimilarityScore,
		Address:         row.Address,
		Price:           row.Price,
	}
	return place
}

// SearchSimilar match_places RPC 함수를 호출해 최근접 이웃 검색을 수행
func (r *SupabasePlacesRepository) SearchSimilar(ctx context.Context, queryVector []float32, limit int, center model.Coordinates, radiusMeters int, category string) ([]*model.Place, error) {
	vectorJSON, err := json.Marshal(queryVector)
	if err != nil {
		return nil, fmt.Errorf("쿼리 벡터 마샬링 실패: %w", err)
	}

	params := map[string]interface{}{
		"query_embedding": string(vectorJSON),
		"match_count":     limit,
		"center_lat":      center.Latitude,
		"center_lng":      center.Longitude,
		"radius_meters":   radiusMeters,
		"place_category":  category,
	}

	data := r.client.GetClient().Rpc("match_places", "", params)
	if data == "" {
		return nil, fmt.Errorf("match_places RPC 호출 실패: 빈 응답")
	}

	var rows []matchPlaceRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("match_places 응답 파싱 실패: %w", err)
	}

	places := make([]*model.Place, 0, len(rows))
	for i := range rows {
		places = append(places, rows[i].toPlace())
	}

	return places, nil
}

// GetByID 장소 단건 조회
func (r *SupabasePlacesRepository) GetByID(ctx context.Context, placeID string) (*model.Place, error) {
	data, count, err := r.client.GetClient().From("places").
		Select("place_id, name, category, latitude, longitude, description, address, price", "exact", false).
		Eq("place_id", placeID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("장소 데이터 조회 실패: %w", err)
	}
	_ = count

	var rows []matchPlaceRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("장소 데이터 파싱 실패: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("장소 ID %s 를 찾을 수 없습니다", placeID)
	}

	return rows[0].toPlace(), nil
}
