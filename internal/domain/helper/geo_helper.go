package helper

import (
	"DateCourse-App/internal/domain/model"
	"math"
	"sort"
)

const earthRadiusM = 6371000.0

// HaversineDistance 두 지점 사이의 대권 거리를 계산한다 (m)
func HaversineDistance(p1, p2 model.Coordinates) float64 {
	lat1 := p1.Latitude * math.Pi / 180
	lng1 := p1.Longitude * math.Pi / 180
	lat2 := p2.Latitude * math.Pi / 180
	lng2 := p2.Longitude * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusM * c
}

// HaversineDistancePlace 두 장소 사이의 거리를 계산한다 (m)
func HaversineDistancePlace(p1, p2 *model.Place) float64 {
	return HaversineDistance(p1.Coordinates, p2.Coordinates)
}

// Midpoint 두 지점의 중간 좌표를 계산한다
func Midpoint(p1, p2 model.Coordinates) model.Coordinates {
	return model.Coordinates{
		Latitude:  (p1.Latitude + p2.Latitude) / 2,
		Longitude: (p1.Longitude + p2.Longitude) / 2,
	}
}

// SortByDistanceFromLocation 기준 좌표로부터의 거리순으로 장소 슬라이스를 정렬한다
func SortByDistanceFromLocation(origin model.Coordinates, places []*model.Place) {
	sort.Slice(places, func(i, j int) bool {
		distI := HaversineDistance(origin, places[i].Coordinates)
		distJ := HaversineDistance(origin, places[j].Coordinates)
		return distI < distJ
	})
}

// BuildTravelSegments 장소 순서대로 인접 구간의 거리 프로필을 계산한다
func BuildTravelSegments(places []*model.Place) ([]model.TravelSegment, float64) {
	if len(places) < 2 {
		return []model.TravelSegment{}, 0
	}

	segments := make([]model.TravelSegment, 0, len(places)-1)
	var total float64
	for i := 0; i < len(places)-1; i++ {
		dist := HaversineDistancePlace(places[i], places[i+1])
		segments = append(segments, model.TravelSegment{
			From:      places[i].Name,
			To:        places[i+1].Name,
			DistanceM: dist,
		})
		total += dist
	}
	return segments, total
}
