package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgvector/pgvector-go"

	"DateCourse-App/internal/domain/model"
	"DateCourse-App/internal/domain/repository"
	"DateCourse-App/internal/infrastructure/database"
)

// PostgresPlacesRepository pgvector 확장을 사용하는 PlaceSearchRepository 구현
type PostgresPlacesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPlacesRepository(client *database.PostgreSQLClient) repository.PlaceSearchRepository {
	return &PostgresPlacesRepository{
		client: client,
	}
}

// PlaceResult 벡터 검색 쿼리 결과를 받기 위한 구조체
type PlaceResult struct {
	PlaceID         string
	Name            string
	Category        string
	Latitude        float64
	Longitude       float64
	Description     sql.NullString
	Address         sql.NullString
	Price           sql.NullInt64
	SimilarityScore float64
}

// ToPlace PlaceResult 를 model.Place 로 변환
func (pr *PlaceResult) ToPlace() *model.Place {
	place := &model.Place{
		PlaceID:  pr.PlaceID,
		Name:     pr.Name,
		Category: pr.Category,
		Coordinates: model.Coordinates{
			Latitude:  pr.Latitude,
			Longitude: pr.Longitude,
		},
		SimilarityScore: pr.SimilarityScore,
	}

	if pr.Description.Valid {
		place.Description = pr.Description.String
	}
	if pr.Address.Valid {
		place.SetAddress(pr.Address.String)
	}
	if pr.Price.Valid {
		price := int(pr.Price.Int64)
		place.Price = &price
	}

	return place
}

// SearchSimilar 지오 반경과 카테고리로 제한한 코사인 유사도 검색.
// 경계 박스 사전 필터로 후보를 좁힌 뒤 pgvector 연산자로 정렬한다.
func (r *PostgresPlacesRepository) SearchSimilar(ctx context.Context, queryVector []float32, limit int, center model.Coordinates, radiusMeters int, category string) ([]*model.Place, error) {
	bound := SearchBound(center, radiusMeters)

	query := `
		SELECT
			p.place_id, p.name, p.category,
			ST_Y(p.location::geometry) as latitude,
			ST_X(p.location::geometry) as longitude,
			p.description, p.address, p.price,
			1 - (p.embedding <=> $1) as similarity_score
		FROM places p
		WHERE p.category = $2
		AND ST_X(p.location::geometry) BETWEEN $3 AND $4
		AND ST_Y(p.location::geometry) BETWEEN $5 AND $6
		AND ST_DWithin(
			ST_GeogFromText('POINT(' || $7 || ' ' || $8 || ')'),
			p.location::geography,
			$9
		)
		ORDER BY p.embedding <=> $1
		LIMIT $10
	`

	rows, err := r.client.DB.QueryContext(ctx, query,
		pgvector.NewVector(queryVector), category,
		bound.Min.Lon(), bound.Max.Lon(), bound.Min.Lat(), bound.Max.Lat(),
		center.Longitude, center.Latitude, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("장소 벡터 검색 실패: %w", err)
	}
	defer rows.Close()

	var places []*model.Place
	for rows.Next() {
		var result PlaceResult
		err := rows.Scan(&result.PlaceID, &result.Name, &result.Category,
			&result.Latitude, &result.Longitude,
			&result.Description, &result.Address, &result.Price,
			&result.SimilarityScore)
		if err != nil {
			return nil, fmt.Errorf("장소 데이터 스캔 실패: %w", err)
		}

		places = append(places, result.ToPlace())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("장소 검색 결과 순회 중 오류: %w", err)
	}

	return places, nil
}

// GetByID 장소 단건 조회
func (r *PostgresPlacesRepository) GetByID(ctx context.Context, placeID string) (*model.Place, error) {
	query := `
		SELECT
			p.place_id, p.name, p.category,
			ST_Y(p.location::geometry) as latitude,
			ST_X(p.location::geometry) as longitude,
			p.description, p.address, p.price,
			0.0 as similarity_score
		FROM places p
		WHERE p.place_id = $1
	`

	row := r.client.DB.QueryRowContext(ctx, query, placeID)

	var result PlaceResult
	err := row.Scan(&result.PlaceID, &result.Name, &result.Category,
		&result.Latitude, &result.Longitude,
		&result.Description, &result.Address, &result.Price,
		&result.SimilarityScore)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("장소 ID %s 를 찾을 수 없습니다", placeID)
		}
		return nil, fmt.Errorf("장소 데이터 조회 실패: %w", err)
	}

	return result.ToPlace(), nil
}
