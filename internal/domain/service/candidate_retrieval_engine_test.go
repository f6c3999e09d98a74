package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"DateCourse-App/internal/domain/model"
)

// fakePlaceRepo 테스트용 PlaceSearchRepository
type fakePlaceRepo struct {
	search func(ctx context.Context, queryVector []float32, limit int, center model.Coordinates, radiusMeters int, category string) ([]*model.Place, error)
	calls  []int // 호출마다 사용된 radiusMeters 기록
}

func (f *fakePlaceRepo) SearchSimilar(ctx context.Context, queryVector []float32, limit int, center model.Coordinates, radiusMeters int, category string) ([]*model.Place, error) {
	f.calls = append(f.calls, radiusMeters)
	return f.search(ctx, queryVector, limit, center, radiusMeters, category)
}

func (f *fakePlaceRepo) GetByID(ctx context.Context, placeID string) (*model.Place, error) {
	return nil, errors.New("not implemented")
}

// makePlaces 카테고리별로 고유 ID 를 가진 n개 장소를 만든다
func makePlaces(category string, n int) []*model.Place {
	places := make([]*model.Place, 0, n)
	for i := 0; i < n; i++ {
		places = append(places, &model.Place{
			PlaceID:         fmt.Sprintf("%s-%d", category, i),
			Name:            fmt.Sprintf("%s %d호점", category, i),
			Category:        category,
			Coordinates:     model.Coordinates{Latitude: 37.5568, Longitude: 126.9237},
			SimilarityScore: 0.9 - float64(i)*0.05,
		})
	}
	return places
}

func retrievalFixture() ([]model.SearchTarget, [][]float32, *model.LocationAnalysis) {
	targets := []model.SearchTarget{
		targetAt(1, model.CategoryRestaurant, 37.5568, 126.9237),
		targetAt(2, model.CategoryCafe, 37.5578, 126.9237),
	}
	embeddings := [][]float32{{0.1, 0.2}, {0.3, 0.4}}
	analysis := NewLocationClusterAnalyzer().Analyze(targets, model.WeatherSunny)
	return targets, embeddings, analysis
}

func TestCandidateRetrievalEngine_FirstTierSuccess(t *testing.T) {
	targets, embeddings, analysis := retrievalFixture()

	repo := &fakePlaceRepo{
		search: func(_ context.Context, _ []float32, limit int, _ model.Coordinates, _ int, category string) ([]*model.Place, error) {
			return makePlaces(category, limit), nil
		},
	}
	engine := NewCandidateRetrievalEngine(repo)

	result, err := engine.Retrieve(context.Background(), targets, embeddings, analysis)

	assert.NoError(t, err)
	assert.Equal(t, "1차 (Top-K=5)", result.AttemptLabel)
	// 맑은 날 단일 지역 반경 1500m 유지
	assert.Equal(t, 1500, result.RadiusUsedM)
	assert.Len(t, result.Places, 10)
}

func TestCandidateRetrievalEngine_LadderEscalation(t *testing.T) {
	targets, embeddings, analysis := retrievalFixture()

	// Top-K=12 에서만 타깃별 2개 이상을 돌려준다
	repo := &fakePlaceRepo{
		search: func(_ context.Context, _ []float32, limit int, _ model.Coordinates, _ int, category string) ([]*model.Place, error) {
			if limit < 12 {
				return makePlaces(category, 1), nil
			}
			return makePlaces(category, 3), nil
		},
	}
	engine := NewCandidateRetrievalEngine(repo)

	result, err := engine.Retrieve(context.Background(), targets, embeddings, analysis)

	assert.NoError(t, err)
	assert.Equal(t, "3차 (Top-K=12)", result.AttemptLabel)
	assert.Len(t, result.Places, 6)
}

func TestCandidateRetrievalEngine_RadiusExpansion(t *testing.T) {
	targets, embeddings, analysis := retrievalFixture()

	// 모든 패스에서 타깃별 1개만: 사다리 전체 실패 후 반경 확대
	repo := &fakePlaceRepo{
		search: func(_ context.Context, _ []float32, _ int, _ model.Coordinates, _ int, category string) ([]*model.Place, error) {
			return makePlaces(category, 1), nil
		},
	}
	engine := NewCandidateRetrievalEngine(repo)

	result, err := engine.Retrieve(context.Background(), targets, embeddings, analysis)

	assert.NoError(t, err)
	assert.Equal(t, model.AttemptLabelExpanded, result.AttemptLabel)
	// 1500m × 1.5 = 2250m
	assert.Equal(t, 2250, result.RadiusUsedM)
	// 부족해도 찾은 만큼은 반환한다 (best-effort)
	assert.Len(t, result.Places, 2)
}

func TestCandidateRetrievalEngine_SourceTagging(t *testing.T) {
	targets, embeddings, analysis := retrievalFixture()

	repo := &fakePlaceRepo{
		search: func(_ context.Context, _ []float32, limit int, _ model.Coordinates, _ int, category string) ([]*model.Place, error) {
			return makePlaces(category, limit), nil
		},
	}
	engine := NewCandidateRetrievalEngine(repo)

	result, err := engine.Retrieve(context.Background(), targets, embeddings, analysis)
	assert.NoError(t, err)

	for _, place := range result.Places {
		assert.NotZero(t, place.SourceSequence)
		assert.Equal(t, place.Category, place.SourceCategory)
	}
}

func TestCandidateRetrievalEngine_IndexError(t *testing.T) {
	targets, embeddings, analysis := retrievalFixture()

	repo := &fakePlaceRepo{
		search: func(_ context.Context, _ []float32, _ int, _ model.Coordinates, _ int, _ string) ([]*model.Place, error) {
			return nil, errors.New("connection refused")
		},
	}
	engine := NewCandidateRetrievalEngine(repo)

	result, err := engine.Retrieve(context.Background(), targets, embeddings, analysis)

	// 인덱스 도달 불가는 숨기지 않고 전파한다
	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrRetrieval)
}

func TestCandidateRetrievalEngine_EmbeddingMismatch(t *testing.T) {
	targets, _, analysis := retrievalFixture()
	engine := NewCandidateRetrievalEngine(&fakePlaceRepo{})

	result, err := engine.Retrieve(context.Background(), targets, [][]float32{{0.1}}, analysis)

	assert.Nil(t, result)
	assert.Error(t, err)
}
