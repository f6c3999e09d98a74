package strategy

import (
	"context"
	"fmt"

	"DateCourse-App/internal/domain/helper"
	"DateCourse-App/internal/domain/model"
)

// EmergencyStrategy 마지막 수단: 후보가 하나라도 있으면 앞에서부터 최대 3개를
// 그대로 수용한다. 빈 결과보다 약한 결과를 돌려주는 쪽을 택한다.
type EmergencyStrategy struct{}

// NewEmergencyStrategy 새로운 EmergencyStrategy 인스턴스를 생성
func NewEmergencyStrategy() CourseSelectionStrategy {
	return &EmergencyStrategy{}
}

func (s *EmergencyStrategy) Name() string {
	return "emergency"
}

func (s *EmergencyStrategy) Select(ctx context.Context, candidates []*model.CourseCombination, userContext *model.UserContext, weather string) ([]model.Course, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: 후보 조합 없음", model.ErrNoCoursesSelected)
	}

	limit := 3
	if len(candidates) < limit {
		limit = len(candidates)
	}

	courses := make([]model.Course, 0, limit)
	for i := 0; i < limit; i++ {
		combination := candidates[i]
		title := helper.FallbackCourseTitle(combination, weather, i)
		courses = append(courses, helper.CombinationToCourse(combination, title, "후보가 제한적인 상황에서 선정된 코스입니다."))
	}

	return courses, nil
}
