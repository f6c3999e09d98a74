package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"DateCourse-App/internal/domain/model"
	"DateCourse-App/internal/domain/repository"
	"DateCourse-App/internal/domain/service"
)

type CourseRecommendUseCase interface {
	// RecommendCourses 맑음/우천 두 브랜치를 병렬로 실행해 추천 결과를 생성하고 저장한다
	RecommendCourses(ctx context.Context, req *model.RecommendRequest) (*model.RecommendResponse, error)

	// GetRecommendation request_id 로 저장된 추천 결과를 조회한다
	GetRecommendation(ctx context.Context, requestID string) (*model.RecommendResponse, error)
}

// courseRecommendUseCaseImpl CourseRecommendUseCase 구현
type courseRecommendUseCaseImpl struct {
	scenarioService service.WeatherScenarioService
	courseStore     repository.CourseStoreRepository
}

// NewCourseRecommendUseCase 새로운 CourseRecommendUseCase 인스턴스를 생성
func NewCourseRecommendUseCase(
	scenarioService service.WeatherScenarioService,
	courseStore repository.CourseStoreRepository,
) CourseRecommendUseCase {
	return &courseRecommendUseCaseImpl{
		scenarioService: scenarioService,
		courseStore:     courseStore,
	}
}

// RecommendCourses 두 날씨 브랜치를 병렬 실행한다.
// 한 브랜치의 실패는 다른 브랜치에 영향을 주지 않고, 전체 상태는
// success / partial / failed 로 합산된다.
func (u *courseRecommendUseCaseImpl) RecommendCourses(ctx context.Context, req *model.RecommendRequest) (*model.RecommendResponse, error) {
	requestID := fmt.Sprintf("course_req_%s", uuid.New().String())
	log.Printf("🚀 코스 추천 시작 (ID: %s, 타깃 %d개)", requestID, len(req.SearchTargets))

	// 전체 파이프라인 타임아웃
	scenarioCtx, cancel := context.WithTimeout(ctx, time.Duration(model.RecommendTimeoutSeconds)*time.Second)
	defer cancel()

	type scenarioOutcome struct {
		weather string
		result  *model.WeatherScenarioResult
	}

	weathers := []string{model.WeatherSunny, model.WeatherRainy}
	resultChan := make(chan scenarioOutcome, len(weathers))
	var wg sync.WaitGroup

	for _, weather := range weathers {
		wg.Add(1)
		go func(w string) {
			defer wg.Done()
			result := u.scenarioService.RunScenario(scenarioCtx, w, req.SearchTargets, &req.UserContext)
			resultChan <- scenarioOutcome{weather: w, result: result}
		}(weather)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	response := &model.RecommendResponse{RequestID: requestID}

	for outcome := range resultChan {
		switch outcome.weather {
		case model.WeatherSunny:
			response.Sunny = outcome.result
		case model.WeatherRainy:
			response.Rainy = outcome.result
		}
	}

	// 타임아웃 등으로 결과가 비어 있으면 실패 브랜치로 채운다
	if response.Sunny == nil {
		response.Sunny = model.FailedScenarioResult(model.WeatherSunny, "처리 시간 초과")
	}
	if response.Rainy == nil {
		response.Rainy = model.FailedScenarioResult(model.WeatherRainy, "처리 시간 초과")
	}

	response.Status = model.OverallStatus(response.Sunny, response.Rainy)

	// 저장 실패는 응답 자체를 막지 않는다
	if err := u.courseStore.SaveRecommendation(ctx, response, model.RecommendationTTLHours); err != nil {
		log.Printf("⚠️ 추천 결과 저장 실패 (응답은 그대로 반환): %v", err)
	}

	log.Printf("🎉 코스 추천 완료 (ID: %s, 상태: %s)", requestID, response.Status)
	return response, nil
}

// GetRecommendation request_id 로 저장된 추천 결과를 조회
func (u *courseRecommendUseCaseImpl) GetRecommendation(ctx context.Context, requestID string) (*model.RecommendResponse, error) {
	log.Printf("📖 추천 결과 조회 시작 (ID: %s)", requestID)

	response, err := u.courseStore.GetRecommendation(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("추천 결과 조회 실패: %w", err)
	}

	log.Printf("✅ 추천 결과 조회 완료 (ID: %s)", requestID)
	return response, nil
}
