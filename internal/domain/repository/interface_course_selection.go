package repository

import (
	"context"

	"DateCourse-App/internal/domain/model"
)

// CourseSelectionProvider 랭킹 오라클의 계약
// 후보 조합 N개와 사용자 컨텍스트를 주면 최대 3개의 선택 결과(인덱스/제목/이유)를 돌려준다.
// 사용 불가 시 호출자는 규칙 기반 선택으로 폴백한다.
type CourseSelectionProvider interface {
	SelectCourses(ctx context.Context, candidates []*model.CourseCombination, userContext *model.UserContext, weather string) ([]model.CourseSelection, error)
}
