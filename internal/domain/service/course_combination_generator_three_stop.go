package service

import (
	"DateCourse-App/internal/domain/model"
)

// generateStrategicSampling 3개 스톱: 전수 탐색 대신 전략적 샘플링으로 조합을 만든다.
// 1) 전원 1순위 조합
// 2) 한 자리만 2순위로 강등한 변형
// 3) 두 자리를 2순위로 강등한 변형
// 4) 남은 예산은 곱 공간에서 샘플링한 조합을 채점해 채운다 (비용 상한 1000)
func (g *CourseCombinationGenerator) generateStrategicSampling(candidates [][]*model.Place, budget int) []*model.CourseCombination {
	positions := len(candidates)
	used := make(map[string]struct{})
	var combinations []*model.CourseCombination

	appendIfValid := func(indices []int) {
		if len(combinations) >= budget {
			return
		}
		for pos, idx := range indices {
			if idx >= len(candidates[pos]) {
				return
			}
		}
		sig := indexSignature(indices)
		if _, ok := used[sig]; ok {
			return
		}
		combination, err := g.completeByIndices(candidates, indices)
		if err != nil {
			return
		}
		used[sig] = struct{}{}
		combinations = append(combinations, combination)
	}

	// 1) 전원 1순위
	appendIfValid(make([]int, positions))

	// 2) 한 자리 강등
	for pos := 0; pos < positions; pos++ {
		indices := make([]int, positions)
		indices[pos] = 1
		appendIfValid(indices)
	}

	// 3) 두 자리 강등
	for first := 0; first < positions; first++ {
		for second := first + 1; second < positions; second++ {
			indices := make([]int, positions)
			indices[first] = 1
			indices[second] = 1
			appendIfValid(indices)
		}
	}

	// 4) 곱 공간 샘플링으로 예산 보충
	if len(combinations) < budget {
		combinations = g.fillFromProductSpace(candidates, combinations, used, budget)
	}

	return combinations
}

// fillFromProductSpace 곱 공간에서 아직 쓰지 않은 조합을 채점해 예산을 채운다
func (g *CourseCombinationGenerator) fillFromProductSpace(
	candidates [][]*model.Place,
	combinations []*model.CourseCombination,
	used map[string]struct{},
	budget int,
) []*model.CourseCombination {
	var sampled []*model.CourseCombination
	sampleCount := 0

	for _, indices := range cartesianIndices(candidates) {
		if sampleCount >= productSampleCap {
			break
		}
		sampleCount++

		sig := indexSignature(indices)
		if _, ok := used[sig]; ok {
			continue
		}
		combination, err := g.completeByIndices(candidates, indices)
		if err != nil {
			continue
		}
		used[sig] = struct{}{}
		sampled = append(sampled, combination)
	}

	sortByQuality(sampled)
	for _, combination := range sampled {
		if len(combinations) >= budget {
			break
		}
		combinations = append(combinations, combination)
	}
	return combinations
}
