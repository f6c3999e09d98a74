package strategy

import (
	"context"
	"fmt"

	"DateCourse-App/internal/domain/helper"
	"DateCourse-App/internal/domain/model"
	"DateCourse-App/internal/domain/repository"
)

// GPTSelectionStrategy 랭킹 오라클(GPT)에게 최종 선택을 위임하는 전략.
// 오라클이 불가하거나 응답이 비정상이면 오류를 반환해 규칙 기반 전략으로 넘긴다.
type GPTSelectionStrategy struct {
	provider repository.CourseSelectionProvider
}

// NewGPTSelectionStrategy 새로운 GPTSelectionStrategy 인스턴스를 생성
func NewGPTSelectionStrategy(provider repository.CourseSelectionProvider) CourseSelectionStrategy {
	return &GPTSelectionStrategy{provider: provider}
}

func (s *GPTSelectionStrategy) Name() string {
	return "gpt_selection"
}

func (s *GPTSelectionStrategy) Select(ctx context.Context, candidates []*model.CourseCombination, userContext *model.UserContext, weather string) ([]model.Course, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("%w: 오라클 미설정", model.ErrOracleUnavailable)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: 후보 조합 없음", model.ErrNoCoursesSelected)
	}

	selections, err := s.provider.SelectCourses(ctx, candidates, userContext, weather)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrOracleUnavailable, err)
	}
	if len(selections) == 0 {
		return nil, fmt.Errorf("%w: 오라클이 빈 선택을 반환", model.ErrOracleUnavailable)
	}

	var courses []model.Course
	for _, selection := range selections {
		if len(courses) >= 3 {
			break
		}
		if selection.SelectedIndex < 0 || selection.SelectedIndex >= len(candidates) {
			// 인덱스 범위 오류는 응답 형식 불량으로 간주한다
			return nil, fmt.Errorf("%w: 선택 인덱스 범위 초과 (%d)", model.ErrOracleUnavailable, selection.SelectedIndex)
		}

		combination := candidates[selection.SelectedIndex]
		title := selection.Title
		if title == "" {
			title = helper.FallbackCourseTitle(combination, weather, selection.SelectedIndex)
		}
		reason := selection.Reason
		if reason == "" {
			reason = "사용자 취향과 이동 거리를 고려해 선정된 코스입니다."
		}
		courses = append(courses, helper.CombinationToCourse(combination, title, reason))
	}

	return courses, nil
}
