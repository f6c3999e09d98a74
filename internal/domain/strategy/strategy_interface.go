package strategy

import (
	"context"

	"DateCourse-App/internal/domain/model"
)

// CourseSelectionStrategy 생존 조합에서 최종 코스(최대 3개)를 고르는 전략의 인터페이스.
// 오케스트레이터는 전략 목록을 순서대로 시도해 처음 성공한 결과를 사용한다.
// try/except 중첩 대신 균일한 계약으로 폴백 체인을 표현한다.
type CourseSelectionStrategy interface {
	// Name 전략 식별자 (로그/디버깅용)
	Name() string

	// Select 후보 조합에서 최대 3개의 코스를 선택한다.
	// 선택이 불가능하면 오류를 반환하고 다음 전략으로 넘어간다.
	Select(ctx context.Context, candidates []*model.CourseCombination, userContext *model.UserContext, weather string) ([]model.Course, error)
}
