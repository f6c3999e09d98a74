package strategy

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"DateCourse-App/internal/domain/model"
)

// fakeSelectionProvider 테스트용 CourseSelectionProvider
type fakeSelectionProvider struct {
	selections []model.CourseSelection
	err        error
}

func (f *fakeSelectionProvider) SelectCourses(ctx context.Context, candidates []*model.CourseCombination, userContext *model.UserContext, weather string) ([]model.CourseSelection, error) {
	return f.selections, f.err
}

func sampleCombinations(n int) []*model.CourseCombination {
	combinations := make([]*model.CourseCombination, 0, n)
	for i := 0; i < n; i++ {
		combinations = append(combinations, &model.CourseCombination{
			CombinationID: fmt.Sprintf("combo-%d", i),
			Places: []*model.Place{
				{PlaceID: fmt.Sprintf("p%d-1", i), Name: fmt.Sprintf("카페 %d", i), SourceSequence: 1},
				{PlaceID: fmt.Sprintf("p%d-2", i), Name: fmt.Sprintf("식당 %d", i), SourceSequence: 2},
			},
			TravelSegments: []model.TravelSegment{{From: "카페", To: "식당", DistanceM: 400}},
			TotalDistanceM: 400,
			QualityScore:   0.5 + float64(i)*0.05,
		})
	}
	return combinations
}

func TestGPTSelectionStrategy(t *testing.T) {
	userContext := &model.UserContext{Preferences: []string{"조용한 분위기"}}

	t.Run("오라클 선택을 코스로 변환한다", func(t *testing.T) {
		provider := &fakeSelectionProvider{
			selections: []model.CourseSelection{
				{SelectedIndex: 2, Title: "홍대 감성 코스", Reason: "조용한 취향에 맞는 코스"},
				{SelectedIndex: 0, Title: "", Reason: ""}, // 빈 필드는 폴백으로 채운다
			},
		}
		selection := NewGPTSelectionStrategy(provider)

		courses, err := selection.Select(context.Background(), sampleCombinations(4), userContext, model.WeatherSunny)

		assert.NoError(t, err)
		assert.Len(t, courses, 2)
		assert.Equal(t, "홍대 감성 코스", courses[0].CourseTitle)
		assert.NotEmpty(t, courses[1].CourseTitle)
		assert.NotEmpty(t, courses[1].RecommendationReason)
	})

	t.Run("오라클 오류는 ErrOracleUnavailable 로 래핑", func(t *testing.T) {
		provider := &fakeSelectionProvider{err: errors.New("rate limited")}
		selection := NewGPTSelectionStrategy(provider)

		courses, err := selection.Select(context.Background(), sampleCombinations(3), userContext, model.WeatherSunny)

		assert.Nil(t, courses)
		assert.ErrorIs(t, err, model.ErrOracleUnavailable)
	})

	t.Run("인덱스 범위 초과는 응답 불량으로 간주", func(t *testing.T) {
		provider := &fakeSelectionProvider{
			selections: []model.CourseSelection{{SelectedIndex: 99, Title: "없는 코스"}},
		}
		selection := NewGPTSelectionStrategy(provider)

		courses, err := selection.Select(context.Background(), sampleCombinations(3), userContext, model.WeatherSunny)

		assert.Nil(t, courses)
		assert.ErrorIs(t, err, model.ErrOracleUnavailable)
	})

	t.Run("최대 3개까지만 변환한다", func(t *testing.T) {
		provider := &fakeSelectionProvider{
			selections: []model.CourseSelection{
				{SelectedIndex: 0}, {SelectedIndex: 1}, {SelectedIndex: 2}, {SelectedIndex: 3},
			},
		}
		selection := NewGPTSelectionStrategy(provider)

		courses, err := selection.Select(context.Background(), sampleCombinations(5), userContext, model.WeatherSunny)

		assert.NoError(t, err)
		assert.Len(t, courses, 3)
	})
}

func TestQualityRankStrategy(t *testing.T) {
	selection := NewQualityRankStrategy()

	t.Run("품질 상위 3개를 내림차순으로 고른다", func(t *testing.T) {
		// sampleCombinations 는 뒤로 갈수록 품질이 높다
		courses, err := selection.Select(context.Background(), sampleCombinations(5), nil, model.WeatherSunny)

		assert.NoError(t, err)
		assert.Len(t, courses, 3)
		assert.GreaterOrEqual(t, courses[0].QualityScore, courses[1].QualityScore)
		assert.GreaterOrEqual(t, courses[1].QualityScore, courses[2].QualityScore)
		assert.InDelta(t, 0.7, courses[0].QualityScore, 1e-9)
	})

	t.Run("후보가 3개 미만이면 있는 만큼만", func(t *testing.T) {
		courses, err := selection.Select(context.Background(), sampleCombinations(1), nil, model.WeatherRainy)

		assert.NoError(t, err)
		assert.Len(t, courses, 1)
	})

	t.Run("빈 후보는 오류", func(t *testing.T) {
		courses, err := selection.Select(context.Background(), nil, nil, model.WeatherSunny)

		assert.Nil(t, courses)
		assert.ErrorIs(t, err, model.ErrNoCoursesSelected)
	})

	t.Run("사용자 컨텍스트가 추천 사유에 반영된다", func(t *testing.T) {
		userContext := &model.UserContext{
			Preferences:  []string{"조용한 분위기"},
			Requirements: model.Requirements{Transportation: "도보"},
		}
		courses, err := selection.Select(context.Background(), sampleCombinations(1), userContext, model.WeatherSunny)

		assert.NoError(t, err)
		assert.Contains(t, courses[0].RecommendationReason, "조용한 분위기")
		assert.Contains(t, courses[0].RecommendationReason, "도보")
	})
}

func TestEmergencyStrategy(t *testing.T) {
	selection := NewEmergencyStrategy()

	t.Run("앞에서부터 최대 3개를 그대로 수용", func(t *testing.T) {
		courses, err := selection.Select(context.Background(), sampleCombinations(5), nil, model.WeatherRainy)

		assert.NoError(t, err)
		assert.Len(t, courses, 3)
		// 정렬하지 않는다: 첫 후보가 그대로 첫 코스
		assert.InDelta(t, 0.5, courses[0].QualityScore, 1e-9)
	})

	t.Run("빈 후보만 오류", func(t *testing.T) {
		_, err := selection.Select(context.Background(), nil, nil, model.WeatherRainy)
		assert.ErrorIs(t, err, model.ErrNoCoursesSelected)
	})
}
