package service

import (
	"DateCourse-App/internal/domain/helper"
	"DateCourse-App/internal/domain/model"
	"DateCourse-App/internal/domain/repository"
	"context"
	"fmt"
	"log"
	"math"
)

// RetrievalResult 후보 검색 결과와 성공한 티어 정보
type RetrievalResult struct {
	Places       []*model.Place
	AttemptLabel string // 성공한 재시도 티어 라벨
	RadiusUsedM  int    // 최종적으로 사용된 최대 검색 반경
}

// CandidateRetrievalEngine 타깃별 벡터 검색을 재시도 사다리와 함께 수행한다.
// Top-K 확대(저렴, 지역성 유지)를 먼저 시도하고, 반경 확대(지역성 훼손)는
// 마지막 수단으로만 사용한다.
type CandidateRetrievalEngine struct {
	placeRepo repository.PlaceSearchRepository
}

// NewCandidateRetrievalEngine 새로운 CandidateRetrievalEngine 인스턴스를 생성
func NewCandidateRetrievalEngine(placeRepo repository.PlaceSearchRepository) *CandidateRetrievalEngine {
	return &CandidateRetrievalEngine{placeRepo: placeRepo}
}

// Retrieve 모든 타깃에 대해 후보 장소를 검색한다.
// embeddings 는 targets 와 같은 순서의 쿼리 벡터여야 한다.
func (e *CandidateRetrievalEngine) Retrieve(
	ctx context.Context,
	targets []model.SearchTarget,
	embeddings [][]float32,
	analysis *model.LocationAnalysis,
) (*RetrievalResult, error) {
	if len(targets) != len(embeddings) {
		return nil, fmt.Errorf("타깃 수(%d)와 임베딩 수(%d)가 일치하지 않습니다", len(targets), len(embeddings))
	}

	// 1단계: Top-K 사다리. 반경은 클러스터 정책값 그대로 유지한다.
	for tier, topK := range model.TopKTiers {
		label := fmt.Sprintf("%d차 (Top-K=%d)", tier+1, topK)

		places, radiusUsed, err := e.runPass(ctx, targets, embeddings, analysis, topK, 1.0)
		if err != nil {
			return nil, err
		}

		if e.isSufficient(places, targets) {
			log.Printf("✅ 후보 검색 성공: %s (후보 %d개)", label, len(places))
			return &RetrievalResult{Places: places, AttemptLabel: label, RadiusUsedM: radiusUsed}, nil
		}
		log.Printf("⚠️ %s: 타깃별 최소 %d개 조건 미충족, 다음 티어로 확대", label, model.MinCandidatesPerTarget)
	}

	// 2단계: 최후의 반경 확대 패스. K 는 2차 티어 값으로 고정하고
	// 부족하더라도 찾은 만큼 반환한다 (best-effort).
	places, radiusUsed, err := e.runPass(ctx, targets, embeddings, analysis, model.RadiusExpansionTopK, model.RadiusExpansionFactor)
	if err != nil {
		return nil, err
	}

	log.Printf("🔭 반경 확대 패스 완료: 후보 %d개 (반경 %dm)", len(places), radiusUsed)
	return &RetrievalResult{
		Places:       places,
		AttemptLabel: model.AttemptLabelExpanded,
		RadiusUsedM:  radiusUsed,
	}, nil
}

// runPass 전체 타깃에 대해 한 번의 검색 패스를 수행한다
func (e *CandidateRetrievalEngine) runPass(
	ctx context.Context,
	targets []model.SearchTarget,
	embeddings [][]float32,
	analysis *model.LocationAnalysis,
	topK int,
	radiusFactor float64,
) ([]*model.Place, int, error) {
	var all []*model.Place
	maxRadius := 0

	for i, target := range targets {
		cluster := analysis.ClusterForSequence(target.Sequence)
		if cluster == nil {
			return nil, 0, fmt.Errorf("순번 %d 타깃이 속한 클러스터를 찾을 수 없습니다", target.Sequence)
		}

		radius := int(math.Round(float64(cluster.SearchRadiusM) * radiusFactor))
		if radius > maxRadius {
			maxRadius = radius
		}

		found, err := e.placeRepo.SearchSimilar(ctx, embeddings[i], topK, cluster.Center, radius, target.Category)
		if err != nil {
			// 인덱스 도달 불가는 이 계층에서 숨기지 않고 오케스트레이터로 전파한다
			return nil, 0, fmt.Errorf("%w: 순번 %d 검색 실패: %v", model.ErrRetrieval, target.Sequence, err)
		}

		for _, place := range found {
			place.SourceSequence = target.Sequence
			place.SourceCategory = target.Category
		}
		all = append(all, found...)
	}

	return helper.DeduplicatePlaces(all), maxRadius, nil
}

// isSufficient 모든 타깃 순번이 최소 후보 수를 확보했는지 확인한다
func (e *CandidateRetrievalEngine) isSufficient(places []*model.Place, targets []model.SearchTarget) bool {
	counts := make(map[int]int)
	for _, place := range places {
		counts[place.SourceSequence]++
	}
	for _, target := range targets {
		if counts[target.Sequence] < model.MinCandidatesPerTarget {
			return false
		}
	}
	return true
}
