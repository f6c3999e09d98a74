package model

import "errors"

// 파이프라인 오류 분류
var (
	// ErrRetrieval 벡터 인덱스 또는 임베딩 서비스에 도달할 수 없는 경우
	ErrRetrieval = errors.New("벡터 검색 서비스 오류")

	// ErrInsufficientCandidates 해당 티어에서 타깃별 최소 후보 수를 채우지 못한 경우 (소프트, 재시도 트리거)
	ErrInsufficientCandidates = errors.New("후보 수 부족")

	// ErrCombinationGeneration 조합 완성 단계에서 개별 조합 처리가 실패한 경우
	ErrCombinationGeneration = errors.New("조합 생성 실패")

	// ErrOracleUnavailable 랭킹 오라클 호출 실패 또는 응답 형식 오류
	ErrOracleUnavailable = errors.New("코스 선택 오라클 사용 불가")

	// ErrNoCoursesSelected 모든 선택 전략이 실패한 경우
	ErrNoCoursesSelected = errors.New("선택 가능한 코스 없음")

	// ErrRecommendationNotFound 저장된 추천 결과를 찾을 수 없는 경우
	ErrRecommendationNotFound = errors.New("추천 결과를 찾을 수 없음")
)
