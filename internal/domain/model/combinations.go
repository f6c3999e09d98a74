package model

// TravelSegment 코스 내 인접한 두 장소 사이의 이동 구간
type TravelSegment struct {
	From      string  `json:"from"`       // 출발 장소명
	To        string  `json:"to"`         // 도착 장소명
	DistanceM float64 `json:"distance_m"` // 직선 거리 (m)
}

// CourseCombination 순번별로 장소를 하나씩 고른 코스 후보
type CourseCombination struct {
	CombinationID  string          `json:"combination_id"`
	Places         []*Place        `json:"places"` // 순번 순서대로 정렬
	TravelSegments []TravelSegment `json:"travel_segments"`
	TotalDistanceM float64         `json:"total_distance_m"`
	QualityScore   float64         `json:"quality_score"` // 0.0~1.0
}

// PlaceIDs 조합에 포함된 장소 ID 목록
func (c *CourseCombination) PlaceIDs() []string {
	ids := make([]string, len(c.Places))
	for i, place := range c.Places {
		ids[i] = place.PlaceID
	}
	return ids
}

// MaxSegmentDistance 가장 긴 단일 이동 구간의 거리를 반환
func (c *CourseCombination) MaxSegmentDistance() float64 {
	var max float64
	for _, seg := range c.TravelSegments {
		if seg.DistanceM > max {
			max = seg.DistanceM
		}
	}
	return max
}

// HasDuplicatePlaces 동일 장소가 2번 이상 포함되어 있는지 확인
func (c *CourseCombination) HasDuplicatePlaces() bool {
	seen := make(map[string]struct{}, len(c.Places))
	for _, place := range c.Places {
		if place == nil {
			continue
		}
		if _, ok := seen[place.PlaceID]; ok {
			return true
		}
		seen[place.PlaceID] = struct{}{}
	}
	return false
}
