package service

import (
	"DateCourse-App/internal/domain/helper"
	"DateCourse-App/internal/domain/model"
	"DateCourse-App/internal/domain/repository"
	"DateCourse-App/internal/domain/strategy"
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
)

// WeatherScenarioService 한 날씨 브랜치의 전체 파이프라인을 실행하는 오케스트레이터
type WeatherScenarioService interface {
	// RunScenario 카테고리 치환 → 임베딩/위치 분석 → 검색 → 조합 생성 → 필터 →
	// 선택 전략 체인 순으로 실행한다. 어떤 단계가 실패해도 예외를 전파하지 않고
	// status=failed 결과로 변환한다 (브랜치 간 독립 실패 보장).
	RunScenario(ctx context.Context, weather string, targets []model.SearchTarget, userContext *model.UserContext) *model.WeatherScenarioResult
}

type weatherScenarioService struct {
	embedder   repository.EmbeddingService
	analyzer   *LocationClusterAnalyzer
	retrieval  *CandidateRetrievalEngine
	generator  *CourseCombinationGenerator
	filter     *DistanceQualityFilter
	strategies []strategy.CourseSelectionStrategy
}

// NewWeatherScenarioService 새로운 WeatherScenarioService 인스턴스를 생성.
// 선택 전략은 오라클 → 규칙 기반 → 비상 순으로 시도된다.
func NewWeatherScenarioService(
	embedder repository.EmbeddingService,
	placeRepo repository.PlaceSearchRepository,
	selectionProvider repository.CourseSelectionProvider,
) WeatherScenarioService {
	strategies := []strategy.CourseSelectionStrategy{
		strategy.NewGPTSelectionStrategy(selectionProvider),
		strategy.NewQualityRankStrategy(),
		strategy.NewEmergencyStrategy(),
	}
	return &weatherScenarioService{
		embedder:   embedder,
		analyzer:   NewLocationClusterAnalyzer(),
		retrieval:  NewCandidateRetrievalEngine(placeRepo),
		generator:  NewCourseCombinationGenerator(),
		filter:     NewDistanceQualityFilter(),
		strategies: strategies,
	}
}

func (s *weatherScenarioService) RunScenario(ctx context.Context, weather string, targets []model.SearchTarget, userContext *model.UserContext) (result *model.WeatherScenarioResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ [%s] 브랜치 패닉 복구: %v", weather, r)
			result = model.FailedScenarioResult(weather, fmt.Sprintf("내부 오류: %v", r))
		}
	}()

	log.Printf("🌤️ [%s] 시나리오 시작 (타깃 %d개)", weather, len(targets))

	// Step 1: 우천 시 실외 카테고리 치환
	scenarioTargets, conversions := s.substituteCategories(weather, targets)

	// Step 2: 임베딩 생성과 위치 분석은 서로 의존성이 없으므로 동시 실행한다
	// (위치 분석은 요청에 이미 포함된 좌표만 사용한다)
	embeddings, analysis, err := s.prepareInParallel(ctx, weather, scenarioTargets)
	if err != nil {
		return model.FailedScenarioResult(weather, err.Error())
	}

	// Step 3: 재시도 사다리를 포함한 후보 검색
	retrieved, err := s.retrieval.Retrieve(ctx, scenarioTargets, embeddings, analysis)
	if err != nil {
		return model.FailedScenarioResult(weather, fmt.Sprintf("후보 검색 실패: %v", err))
	}

	// Step 4: 조합 생성
	placesBySequence := helper.GroupBySequence(retrieved.Places)
	generated := s.generator.Generate(placesBySequence, scenarioTargets, weather, analysis)
	if len(generated) == 0 {
		// 최후 패스까지 비어 있으면 best-effort 결과로 종료한다 (크래시 아님)
		log.Printf("⚠️ [%s] 생성된 조합 없음: 빈 결과 반환", weather)
		return &model.WeatherScenarioResult{
			Weather:             weather,
			Status:              model.StatusFailed,
			Courses:             []model.Course{},
			AttemptLabel:        retrieved.AttemptLabel,
			RadiusUsedM:         retrieved.RadiusUsedM,
			CategoryConversions: conversions,
			ErrorMessage:        "후보 부족으로 코스를 구성하지 못했습니다",
		}
	}

	// Step 5: 거리/품질 필터 (완화 폴백 포함)
	accepted := s.filter.Apply(generated, analysis, weather)

	// Step 6: 날씨별 정렬 — 우천은 짧은 이동 우선, 맑음은 품질 우선
	s.sortForWeather(accepted, weather)

	// Step 7: 오라클에 넘길 후보 풀 구성
	pool := s.buildSelectionPool(accepted, generated)

	// Step 8: 선택 전략 체인
	courses, err := s.runSelectionChain(ctx, pool, userContext, weather)
	if err != nil {
		return model.FailedScenarioResult(weather, err.Error())
	}

	log.Printf("🎉 [%s] 시나리오 완료: 코스 %d개 (%s)", weather, len(courses), retrieved.AttemptLabel)
	return &model.WeatherScenarioResult{
		Weather:             weather,
		Status:              model.StatusSuccess,
		Courses:             courses,
		AttemptLabel:        retrieved.AttemptLabel,
		RadiusUsedM:         retrieved.RadiusUsedM,
		CategoryConversions: conversions,
	}
}

// substituteCategories 우천 시 실외 카테고리를 실내 대안으로 치환한다.
// 여러 실외 스톱이 같은 대안으로 몰리지 않도록 라운드로빈 인덱스를 사용한다.
func (s *weatherScenarioService) substituteCategories(weather string, targets []model.SearchTarget) ([]model.SearchTarget, []model.CategoryConversion) {
	conversions := []model.CategoryConversion{}
	if weather != model.WeatherRainy {
		return targets, conversions
	}

	substituted := make([]model.SearchTarget, len(targets))
	copy(substituted, targets)

	roundRobin := 0
	for i, target := range substituted {
		if !model.OutdoorCategories[target.Category] {
			continue
		}

		replacement := model.IndoorSubstitutes[roundRobin%len(model.IndoorSubstitutes)]
		roundRobin++

		conversions = append(conversions, model.CategoryConversion{
			Sequence:     target.Sequence,
			FromCategory: target.Category,
			ToCategory:   replacement,
		})

		substituted[i].Category = replacement
		substituted[i].SemanticQuery = fmt.Sprintf("%s, %s", target.SemanticQuery, model.IndoorQueryRewrites[replacement])
		log.Printf("☔ 순번 %d: %s → %s 치환", target.Sequence, target.Category, replacement)
	}

	return substituted, conversions
}

// prepareInParallel 임베딩 생성과 위치 클러스터 분석을 동시 실행한다
func (s *weatherScenarioService) prepareInParallel(ctx context.Context, weather string, targets []model.SearchTarget) ([][]float32, *model.LocationAnalysis, error) {
	var (
		embeddings [][]float32
		embedErr   error
		analysis   *model.LocationAnalysis
	)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		queries := make([]string, len(targets))
		for i, target := range targets {
			queries[i] = target.SemanticQuery
		}
		embeddings, embedErr = s.embedder.EmbedBatch(ctx, queries)
	}()

	go func() {
		defer wg.Done()
		analysis = s.analyzer.Analyze(targets, weather)
	}()

	wg.Wait()

	if embedErr != nil {
		return nil, nil, fmt.Errorf("임베딩 생성 실패: %w", embedErr)
	}
	return embeddings, analysis, nil
}

// sortForWeather 날씨별 우선순위로 조합을 정렬한다
func (s *weatherScenarioService) sortForWeather(combinations []*model.CourseCombination, weather string) {
	if weather == model.WeatherRainy {
		sort.Slice(combinations, func(i, j int) bool {
			return combinations[i].TotalDistanceM < combinations[j].TotalDistanceM
		})
		return
	}
	sort.Slice(combinations, func(i, j int) bool {
		return combinations[i].QualityScore > combinations[j].QualityScore
	})
}

// buildSelectionPool 오라클에 넘길 후보 풀을 만든다.
// 생존 조합이 최소치보다 적으면 필터에서 탈락한 조합을 다시 포함시킨다.
func (s *weatherScenarioService) buildSelectionPool(accepted, generated []*model.CourseCombination) []*model.CourseCombination {
	pool := make([]*model.CourseCombination, len(accepted))
	copy(pool, accepted)

	if len(pool) < model.MinCombinationsForGPT {
		inPool := make(map[string]struct{}, len(pool))
		for _, combination := range pool {
			inPool[combination.CombinationID] = struct{}{}
		}
		for _, combination := range generated {
			if len(pool) >= model.MinCombinationsForGPT {
				break
			}
			if _, ok := inPool[combination.CombinationID]; ok {
				continue
			}
			pool = append(pool, combination)
		}
	}

	if len(pool) > model.MaxCombinationsForGPT {
		pool = pool[:model.MaxCombinationsForGPT]
	}
	return pool
}

// runSelectionChain 선택 전략을 순서대로 시도해 처음 성공한 결과를 반환한다
func (s *weatherScenarioService) runSelectionChain(ctx context.Context, pool []*model.CourseCombination, userContext *model.UserContext, weather string) ([]model.Course, error) {
	var lastErr error
	for _, selection := range s.strategies {
		courses, err := selection.Select(ctx, pool, userContext, weather)
		if err != nil {
			log.Printf("⚠️ [%s] 선택 전략 '%s' 실패: %v", weather, selection.Name(), err)
			lastErr = err
			continue
		}
		log.Printf("🏆 [%s] 선택 전략 '%s' 성공: 코스 %d개", weather, selection.Name(), len(courses))
		return courses, nil
	}
	return nil, fmt.Errorf("모든 선택 전략 실패: %w", lastErr)
}
