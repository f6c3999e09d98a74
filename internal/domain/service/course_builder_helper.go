package service

import (
	"DateCourse-App/internal/domain/helper"
	"DateCourse-App/internal/domain/model"
	"fmt"

	"github.com/google/uuid"
)

// CourseBuilderHelper 조합 완성과 코스 변환에 관한 헬퍼 함수를 제공한다
type CourseBuilderHelper struct{}

// NewCourseBuilderHelper 새로운 CourseBuilderHelper 인스턴스를 생성
func NewCourseBuilderHelper() *CourseBuilderHelper {
	return &CourseBuilderHelper{}
}

// CompleteCombination 장소 시퀀스로부터 이동 구간/총 거리/품질 점수를 계산해
// 완성된 조합을 만든다. 유효하지 않은 조합은 오류를 반환한다 (호출자가 건너뜀).
func (h *CourseBuilderHelper) CompleteCombination(places []*model.Place) (*model.CourseCombination, error) {
	if len(places) == 0 {
		return nil, fmt.Errorf("%w: 빈 장소 시퀀스", model.ErrCombinationGeneration)
	}
	for _, place := range places {
		if place == nil {
			return nil, fmt.Errorf("%w: nil 장소가 포함됨", model.ErrCombinationGeneration)
		}
	}

	combination := &model.CourseCombination{
		CombinationID: uuid.New().String(),
		Places:        places,
	}
	if combination.HasDuplicatePlaces() {
		return nil, fmt.Errorf("%w: 동일 장소 중복", model.ErrCombinationGeneration)
	}

	segments, total := helper.BuildTravelSegments(places)
	combination.TravelSegments = segments
	combination.TotalDistanceM = total
	combination.QualityScore = h.QualityScore(places, total)

	return combination, nil
}

// QualityScore 조합 품질 점수를 계산한다 (0.0~1.0).
// 유사도 평균 40% + 거리 적합도 40% + 설명 키워드 다양성 20%.
func (h *CourseBuilderHelper) QualityScore(places []*model.Place, totalDistanceM float64) float64 {
	similarity := helper.MeanSimilarity(places)

	distance := 1.0 - totalDistanceM/model.DistanceNormalizationM
	if distance < 0 {
		distance = 0
	}

	diversity := helper.KeywordDiversity(places, model.DiversityKeywordCount)

	return model.QualityWeightSimilarity*similarity +
		model.QualityWeightDistance*distance +
		model.QualityWeightDiversity*diversity
}

