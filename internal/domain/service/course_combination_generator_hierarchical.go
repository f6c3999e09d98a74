package service

import (
	"DateCourse-App/internal/domain/model"
	"log"
)

// emergencyMinCombinations 비상 생성기가 보장하는 최소 조합 수
const emergencyMinCombinations = 5

// generateHierarchical 4~5개 스톱: 계층적 생성으로 곱 공간을 직접 펼치지 않는다.
// 코어 조합(전원 1순위 + 한 자리 강등)을 먼저 만들고, 이어서 코어에 쓰이지 않은
// 후보를 우선 사용하는 다양성 조합으로 예산을 채운다. 둘 다 실패하면 비상
// 생성기가 순환 인덱스 선택으로 최소한의 조합을 보장한다.
// 후보가 극히 부족해도 빈 결과보다는 약한 결과를 돌려주는 쪽을 택한다.
func (g *CourseCombinationGenerator) generateHierarchical(candidates [][]*model.Place, budget int) []*model.CourseCombination {
	positions := len(candidates)
	used := make(map[string]struct{})
	var combinations []*model.CourseCombination

	appendIfValid := func(indices []int) bool {
		if len(combinations) >= budget {
			return false
		}
		for pos, idx := range indices {
			if idx >= len(candidates[pos]) {
				return false
			}
		}
		sig := indexSignature(indices)
		if _, ok := used[sig]; ok {
			return false
		}
		combination, err := g.completeByIndices(candidates, indices)
		if err != nil {
			return false
		}
		used[sig] = struct{}{}
		combinations = append(combinations, combination)
		return true
	}

	// 코어: 전원 1순위
	appendIfValid(make([]int, positions))

	// 코어: 한 자리만 2순위로 강등
	for pos := 0; pos < positions; pos++ {
		indices := make([]int, positions)
		indices[pos] = 1
		appendIfValid(indices)
	}

	// 다양성: 코어에 쓰이지 않은 장소를 우선하는 변형
	combinations = g.appendDiversityCombinations(candidates, combinations, used, budget, appendIfValid)

	// 비상: 아무 조합도 만들지 못한 경우 순환 선택으로 최소 수량을 보장
	if len(combinations) == 0 {
		log.Printf("🚨 계층적 생성 실패: 비상 순환 생성기로 전환")
		combinations = g.generateEmergency(candidates, budget)
	}

	return combinations
}

// appendDiversityCombinations 코어 조합에 등장하지 않은 후보를 우선 선택해
// 장소 다양성을 높인 조합을 추가한다
func (g *CourseCombinationGenerator) appendDiversityCombinations(
	candidates [][]*model.Place,
	combinations []*model.CourseCombination,
	used map[string]struct{},
	budget int,
	appendIfValid func([]int) bool,
) []*model.CourseCombination {
	usedPlaceIDs := make(map[string]struct{})
	for _, combination := range combinations {
		for _, id := range combination.PlaceIDs() {
			usedPlaceIDs[id] = struct{}{}
		}
	}

	// 자리별 선호 순서: 미사용 후보(유사도순) 먼저, 그 뒤에 사용된 후보
	preferences := make([][]int, len(candidates))
	for pos, list := range candidates {
		var unused, usedIdx []int
		for idx, place := range list {
			if _, ok := usedPlaceIDs[place.PlaceID]; ok {
				usedIdx = append(usedIdx, idx)
			} else {
				unused = append(unused, idx)
			}
		}
		preferences[pos] = append(unused, usedIdx...)
	}

	before := len(combinations)
	for variant := 0; variant < budget && len(combinations) < budget; variant++ {
		indices := make([]int, len(candidates))
		for pos := range candidates {
			pref := preferences[pos]
			indices[pos] = pref[variant%len(pref)]
		}
		appendIfValid(indices)
	}

	if added := len(combinations) - before; added > 0 {
		log.Printf("🎨 다양성 조합 %d개 추가", added)
	}
	return combinations
}

// generateEmergency 자리별 후보를 순환(라운드로빈)으로 골라
// 후보가 극히 부족해도 비어 있지 않은 결과를 만든다
func (g *CourseCombinationGenerator) generateEmergency(candidates [][]*model.Place, budget int) []*model.CourseCombination {
	target := emergencyMinCombinations
	if target > budget {
		target = budget
	}

	used := make(map[string]struct{})
	var combinations []*model.CourseCombination

	// target 보다 넉넉히 순회해 중복 시그니처를 건너뛸 여유를 둔다
	for variant := 0; variant < target*len(candidates)+target; variant++ {
		if len(combinations) >= target {
			break
		}
		indices := make([]int, len(candidates))
		for pos, list := range candidates {
			indices[pos] = (variant + pos) % len(list)
		}
		sig := indexSignature(indices)
		if _, ok := used[sig]; ok {
			continue
		}
		combination, err := g.completeByIndices(candidates, indices)
		if err != nil {
			continue
		}
		used[sig] = struct{}{}
		combinations = append(combinations, combination)
	}

	// 중복 장소 검증 때문에 모두 탈락한 경우: 장소 중복을 허용하지 않는 이상
	// 후보 구성상 조합이 불가능한 것이므로 빈 결과를 반환한다
	return combinations
}
