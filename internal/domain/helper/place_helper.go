package helper

import (
	"DateCourse-App/internal/domain/model"
	"sort"
	"strings"
)

// FindHighestSimilarity 유사도가 가장 높은 장소를 찾는다
func FindHighestSimilarity(places []*model.Place) *model.Place {
	if len(places) == 0 {
		return nil
	}
	highest := places[0]
	for _, p := range places {
		if p.SimilarityScore > highest.SimilarityScore {
			highest = p
		}
	}
	return highest
}

// SortBySimilarity 유사도가 높은 순으로 장소 슬라이스를 정렬한다
func SortBySimilarity(places []*model.Place) {
	sort.Slice(places, func(i, j int) bool {
		return places[i].SimilarityScore > places[j].SimilarityScore
	})
}

// DeduplicatePlaces 동일 place_id 를 제거한다 (먼저 나온 항목 우선)
func DeduplicatePlaces(places []*model.Place) []*model.Place {
	seen := make(map[string]struct{}, len(places))
	var result []*model.Place
	for _, p := range places {
		if p == nil {
			continue
		}
		if _, ok := seen[p.PlaceID]; ok {
			continue
		}
		seen[p.PlaceID] = struct{}{}
		result = append(result, p)
	}
	return result
}

// GroupBySequence 장소들을 원천 타깃 순번별로 그룹핑한다 (그룹 내부는 유사도순)
func GroupBySequence(places []*model.Place) map[int][]*model.Place {
	grouped := make(map[int][]*model.Place)
	for _, p := range places {
		if p == nil {
			continue
		}
		grouped[p.SourceSequence] = append(grouped[p.SourceSequence], p)
	}
	for seq := range grouped {
		SortBySimilarity(grouped[seq])
	}
	return grouped
}

// DescriptionKeywords 장소 설명의 앞쪽 공백 토큰들을 키워드로 추출한다
func DescriptionKeywords(place *model.Place, count int) []string {
	tokens := strings.Fields(place.Description)
	if len(tokens) > count {
		tokens = tokens[:count]
	}
	return tokens
}

// KeywordDiversity 조합 내 장소 설명 키워드의 다양성 비율을 계산한다 (0~1)
// 유니크 키워드 수 / 키워드 집합 크기의 합. 유사한 장소만 모인 조합에 불이익을 준다.
func KeywordDiversity(places []*model.Place, keywordCount int) float64 {
	unique := make(map[string]struct{})
	var totalSetSize int

	for _, p := range places {
		set := make(map[string]struct{})
		for _, kw := range DescriptionKeywords(p, keywordCount) {
			set[kw] = struct{}{}
			unique[kw] = struct{}{}
		}
		totalSetSize += len(set)
	}

	if totalSetSize == 0 {
		return 0
	}
	return float64(len(unique)) / float64(totalSetSize)
}

// MeanSimilarity 조합 내 장소 유사도의 평균을 계산한다
func MeanSimilarity(places []*model.Place) float64 {
	if len(places) == 0 {
		return 0
	}
	var sum float64
	for _, p := range places {
		sum += p.SimilarityScore
	}
	return sum / float64(len(places))
}
