package strategy

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"DateCourse-App/internal/domain/helper"
	"DateCourse-App/internal/domain/model"
)

// QualityRankStrategy 품질 점수 상위 3개를 고르는 규칙 기반 전략.
// 오라클 폴백으로 사용되며 외부 의존성이 없다.
type QualityRankStrategy struct{}

// NewQualityRankStrategy 새로운 QualityRankStrategy 인스턴스를 생성
func NewQualityRankStrategy() CourseSelectionStrategy {
	return &QualityRankStrategy{}
}

func (s *QualityRankStrategy) Name() string {
	return "quality_rank"
}

func (s *QualityRankStrategy) Select(ctx context.Context, candidates []*model.CourseCombination, userContext *model.UserContext, weather string) ([]model.Course, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: 후보 조합 없음", model.ErrNoCoursesSelected)
	}

	ranked := make([]*model.CourseCombination, len(candidates))
	copy(ranked, candidates)
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].QualityScore > ranked[j].QualityScore
	})

	limit := 3
	if len(ranked) < limit {
		limit = len(ranked)
	}

	courses := make([]model.Course, 0, limit)
	for i := 0; i < limit; i++ {
		combination := ranked[i]
		title := helper.FallbackCourseTitle(combination, weather, i)
		reason := s.buildReason(combination, userContext, weather)
		courses = append(courses, helper.CombinationToCourse(combination, title, reason))
	}

	return courses, nil
}

// buildReason 사용자 컨텍스트를 반영한 규칙 기반 추천 사유를 만든다
func (s *QualityRankStrategy) buildReason(combination *model.CourseCombination, userContext *model.UserContext, weather string) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("총 이동 거리 약 %.0fm의 %s 코스", combination.TotalDistanceM, helper.KoreanWeather(weather)))

	if userContext != nil && len(userContext.Preferences) > 0 {
		parts = append(parts, fmt.Sprintf("'%s' 취향을 반영", userContext.Preferences[0]))
	}
	if userContext != nil && userContext.Requirements.Transportation != "" {
		parts = append(parts, fmt.Sprintf("%s 이동에 적합", userContext.Requirements.Transportation))
	}

	return strings.Join(parts, ", ") + "입니다."
}
