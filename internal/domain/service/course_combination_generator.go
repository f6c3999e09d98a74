package service

import (
	"DateCourse-App/internal/domain/model"
	"log"
	"sort"
)

// CourseCombinationGenerator 순번별 후보 리스트로부터 제한된 수의 다양한
// 코스 조합을 생성한다. 스톱 수가 늘수록 예산을 줄여 조합 폭발을 막는다.
type CourseCombinationGenerator struct {
	builder *CourseBuilderHelper
}

// NewCourseCombinationGenerator 새로운 CourseCombinationGenerator 인스턴스를 생성
func NewCourseCombinationGenerator() *CourseCombinationGenerator {
	return &CourseCombinationGenerator{
		builder: NewCourseBuilderHelper(),
	}
}

// productSampleCap 전수 탐색 대신 샘플링할 때의 비용 상한
const productSampleCap = 1000

// Generate 스톱 수에 따라 생성 전략을 선택해 조합을 만든다.
// 반환되는 조합 수는 항상 MaxCombinationsFor(스톱 수) 이하이다.
func (g *CourseCombinationGenerator) Generate(
	placesBySequence map[int][]*model.Place,
	targets []model.SearchTarget,
	weather string,
	analysis *model.LocationAnalysis,
) []*model.CourseCombination {
	sequences := sortedSequences(targets)
	candidates := make([][]*model.Place, 0, len(sequences))
	for _, seq := range sequences {
		list := placesBySequence[seq]
		if len(list) == 0 {
			// 한 순번이라도 후보가 없으면 완전한 코스를 만들 수 없다
			log.Printf("⚠️ 순번 %d 후보 없음: 조합 생성 불가", seq)
			return []*model.CourseCombination{}
		}
		candidates = append(candidates, list)
	}

	stopCount := len(sequences)
	budget := model.MaxCombinationsFor(stopCount)

	var combinations []*model.CourseCombination
	switch {
	case stopCount <= 2:
		combinations = g.generateExhaustive(candidates, budget)
	case stopCount == 3:
		combinations = g.generateStrategicSampling(candidates, budget)
	default:
		combinations = g.generateHierarchical(candidates, budget)
	}

	sortByQuality(combinations)
	if len(combinations) > budget {
		combinations = combinations[:budget]
	}

	log.Printf("🧩 조합 생성 완료: 스톱 %d개 → 조합 %d개 (예산 %d)", stopCount, len(combinations), budget)
	return combinations
}

// generateExhaustive 1~2개 스톱: 전체 데카르트 곱을 채점해 상위만 남긴다
func (g *CourseCombinationGenerator) generateExhaustive(candidates [][]*model.Place, budget int) []*model.CourseCombination {
	var combinations []*model.CourseCombination

	for _, indices := range cartesianIndices(candidates) {
		combination, err := g.completeByIndices(candidates, indices)
		if err != nil {
			continue
		}
		combinations = append(combinations, combination)
	}

	sortByQuality(combinations)
	if len(combinations) > budget {
		combinations = combinations[:budget]
	}
	return combinations
}

// completeByIndices 인덱스 튜플로 장소 시퀀스를 만들어 조합을 완성한다.
// 개별 조합 실패는 배치를 중단하지 않는다 (건너뛰고 계속).
func (g *CourseCombinationGenerator) completeByIndices(candidates [][]*model.Place, indices []int) (*model.CourseCombination, error) {
	places := make([]*model.Place, len(indices))
	for pos, idx := range indices {
		places[pos] = candidates[pos][idx]
	}
	combination, err := g.builder.CompleteCombination(places)
	if err != nil {
		log.Printf("⚠️ 조합 건너뜀: %v", err)
		return nil, err
	}
	return combination, nil
}

// cartesianIndices 후보 리스트들의 인덱스 데카르트 곱을 생성한다
func cartesianIndices(candidates [][]*model.Place) [][]int {
	result := [][]int{{}}
	for _, list := range candidates {
		var next [][]int
		for _, prefix := range result {
			for idx := range list {
				tuple := make([]int, len(prefix), len(prefix)+1)
				copy(tuple, prefix)
				next = append(next, append(tuple, idx))
			}
		}
		result = next
	}
	return result
}

// sortedSequences 타깃들의 순번을 오름차순으로 반환한다
func sortedSequences(targets []model.SearchTarget) []int {
	sequences := make([]int, 0, len(targets))
	for _, target := range targets {
		sequences = append(sequences, target.Sequence)
	}
	sort.Ints(sequences)
	return sequences
}

// sortByQuality 품질 점수 내림차순 정렬
func sortByQuality(combinations []*model.CourseCombination) {
	sort.Slice(combinations, func(i, j int) bool {
		return combinations[i].QualityScore > combinations[j].QualityScore
	})
}

// indexSignature 인덱스 튜플의 중복 방지용 시그니처
func indexSignature(indices []int) string {
	sig := make([]byte, 0, len(indices)*2)
	for _, idx := range indices {
		sig = append(sig, byte('0'+idx/10), byte('0'+idx%10))
	}
	return string(sig)
}
