package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"DateCourse-App/internal/domain/model"
)

// fakeEmbedder 테스트용 EmbeddingService
type fakeEmbedder struct {
	err     error
	queries []string
	mu      sync.Mutex
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := f.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	f.queries = append(f.queries, texts...)
	f.mu.Unlock()

	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{0.1, 0.2, 0.3}
	}
	return vectors, nil
}

// fakeOracleProvider 테스트용 CourseSelectionProvider
type fakeOracleProvider struct {
	selections []model.CourseSelection
	err        error
}

func (f *fakeOracleProvider) SelectCourses(ctx context.Context, candidates []*model.CourseCombination, userContext *model.UserContext, weather string) ([]model.CourseSelection, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.selections != nil {
		return f.selections, nil
	}
	return []model.CourseSelection{{SelectedIndex: 0, Title: "테스트 코스", Reason: "테스트 사유"}}, nil
}

// richPlaceRepo 카테고리별로 서술이 다양한 후보를 충분히 돌려주는 저장소
func richPlaceRepo() *fakePlaceRepo {
	descriptions := []string{
		"조용한 골목 분위기 좋은 공간",
		"활기찬 거리 인기 많은 명소",
		"아늑한 실내 데이트 하기 좋은",
		"뷰가 예쁜 감성 가득한 장소",
		"숨은 보석 같은 로컬 맛집 스팟",
	}
	return &fakePlaceRepo{
		search: func(_ context.Context, _ []float32, limit int, center model.Coordinates, _ int, category string) ([]*model.Place, error) {
			places := makePlaces(category, limit)
			for i, place := range places {
				place.Coordinates = model.Coordinates{
					Latitude:  center.Latitude + float64(i)*0.0005,
					Longitude: center.Longitude,
				}
				place.Description = descriptions[i%len(descriptions)]
			}
			return places, nil
		},
	}
}

func scenarioTargets() []model.SearchTarget {
	return []model.SearchTarget{
		targetAt(1, model.CategoryRestaurant, 37.5568, 126.9237),
		targetAt(2, model.CategoryCafe, 37.5578, 126.9237),
	}
}

func TestWeatherScenarioService_SunnySuccess(t *testing.T) {
	svc := NewWeatherScenarioService(&fakeEmbedder{}, richPlaceRepo(), &fakeOracleProvider{})

	result := svc.RunScenario(context.Background(), model.WeatherSunny, scenarioTargets(), nil)

	assert.Equal(t, model.WeatherSunny, result.Weather)
	assert.Equal(t, model.StatusSuccess, result.Status)
	assert.NotEmpty(t, result.Courses)
	assert.LessOrEqual(t, len(result.Courses), 3)
	assert.Equal(t, "1차 (Top-K=5)", result.AttemptLabel)
	assert.Empty(t, result.CategoryConversions)
}

func TestWeatherScenarioService_RainySubstitution(t *testing.T) {
	repo := richPlaceRepo()
	searchedCategories := make(map[string]bool)
	inner := repo.search
	repo.search = func(ctx context.Context, vec []float32, limit int, center model.Coordinates, radius int, category string) ([]*model.Place, error) {
		searchedCategories[category] = true
		return inner(ctx, vec, limit, center, radius, category)
	}

	embedder := &fakeEmbedder{}
	svc := NewWeatherScenarioService(embedder, repo, &fakeOracleProvider{})

	targets := []model.SearchTarget{
		targetAt(1, model.CategoryOutdoor, 37.5568, 126.9237),
		targetAt(2, model.CategoryParking, 37.5578, 126.9237),
		targetAt(3, model.CategoryCafe, 37.5588, 126.9237),
	}

	result := svc.RunScenario(context.Background(), model.WeatherRainy, targets, nil)

	assert.Equal(t, model.StatusSuccess, result.Status)

	t.Run("치환 기록이 라운드로빈 순서로 남는다", func(t *testing.T) {
		assert.Len(t, result.CategoryConversions, 2)
		assert.Equal(t, model.CategoryOutdoor, result.CategoryConversions[0].FromCategory)
		assert.Equal(t, model.CategoryCulture, result.CategoryConversions[0].ToCategory)
		assert.Equal(t, model.CategoryParking, result.CategoryConversions[1].FromCategory)
		assert.Equal(t, model.CategoryEntertainment, result.CategoryConversions[1].ToCategory)
	})

	t.Run("검색은 치환된 카테고리로 수행된다", func(t *testing.T) {
		assert.True(t, searchedCategories[model.CategoryCulture])
		assert.True(t, searchedCategories[model.CategoryEntertainment])
		assert.False(t, searchedCategories[model.CategoryOutdoor])
		assert.False(t, searchedCategories[model.CategoryParking])
	})

	t.Run("시맨틱 쿼리에 실내 표현이 덧붙는다", func(t *testing.T) {
		found := false
		for _, query := range embedder.queries {
			if query == "분위기 좋은 곳, 실내 문화 공간" {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestWeatherScenarioService_SunnyKeepsCategories(t *testing.T) {
	svc := NewWeatherScenarioService(&fakeEmbedder{}, richPlaceRepo(), &fakeOracleProvider{})

	targets := []model.SearchTarget{
		targetAt(1, model.CategoryOutdoor, 37.5568, 126.9237),
		targetAt(2, model.CategoryCafe, 37.5578, 126.9237),
	}

	result := svc.RunScenario(context.Background(), model.WeatherSunny, targets, nil)

	// 맑은 날에는 실외 카테고리도 치환하지 않는다
	assert.Empty(t, result.CategoryConversions)
	assert.Equal(t, model.StatusSuccess, result.Status)
}

func TestWeatherScenarioService_FailureIsolation(t *testing.T) {
	t.Run("임베딩 실패는 failed 결과로 변환된다", func(t *testing.T) {
		embedder := &fakeEmbedder{err: errors.New("API quota exceeded")}
		svc := NewWeatherScenarioService(embedder, richPlaceRepo(), &fakeOracleProvider{})

		result := svc.RunScenario(context.Background(), model.WeatherSunny, scenarioTargets(), nil)

		assert.Equal(t, model.StatusFailed, result.Status)
		assert.Empty(t, result.Courses)
		assert.Contains(t, result.ErrorMessage, "임베딩")
	})

	t.Run("검색 인덱스 실패는 failed 결과로 변환된다", func(t *testing.T) {
		repo := &fakePlaceRepo{
			search: func(_ context.Context, _ []float32, _ int, _ model.Coordinates, _ int, _ string) ([]*model.Place, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := NewWeatherScenarioService(&fakeEmbedder{}, repo, &fakeOracleProvider{})

		result := svc.RunScenario(context.Background(), model.WeatherRainy, scenarioTargets(), nil)

		assert.Equal(t, model.StatusFailed, result.Status)
		assert.Contains(t, result.ErrorMessage, "후보 검색 실패")
	})

	t.Run("후보가 전무하면 best-effort 실패 결과", func(t *testing.T) {
		repo := &fakePlaceRepo{
			search: func(_ context.Context, _ []float32, _ int, _ model.Coordinates, _ int, _ string) ([]*model.Place, error) {
				return nil, nil
			},
		}
		svc := NewWeatherScenarioService(&fakeEmbedder{}, repo, &fakeOracleProvider{})

		result := svc.RunScenario(context.Background(), model.WeatherSunny, scenarioTargets(), nil)

		assert.Equal(t, model.StatusFailed, result.Status)
		// 반경 확대까지 시도한 기록은 남긴다
		assert.Equal(t, model.AttemptLabelExpanded, result.AttemptLabel)
	})
}

func TestWeatherScenarioService_OracleFallback(t *testing.T) {
	// 오라클이 죽어도 규칙 기반 전략으로 코스가 나와야 한다
	provider := &fakeOracleProvider{err: errors.New("model overloaded")}
	svc := NewWeatherScenarioService(&fakeEmbedder{}, richPlaceRepo(), provider)

	result := svc.RunScenario(context.Background(), model.WeatherSunny, scenarioTargets(), nil)

	assert.Equal(t, model.StatusSuccess, result.Status)
	assert.NotEmpty(t, result.Courses)
	for _, course := range result.Courses {
		assert.NotEmpty(t, course.CourseTitle)
		assert.NotEmpty(t, course.RecommendationReason)
	}
}
