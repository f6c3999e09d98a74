package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"DateCourse-App/internal/domain/model"
)

// 홍대입구역과 합정역 좌표 (실측 거리 약 1.1km)
var (
	hongdae  = model.Coordinates{Latitude: 37.5568, Longitude: 126.9237}
	hapjeong = model.Coordinates{Latitude: 37.5499, Longitude: 126.9140}
)

func TestHaversineDistance(t *testing.T) {
	t.Run("같은 지점은 거리 0", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(hongdae, hongdae))
	})

	t.Run("홍대-합정 거리는 약 1.1km", func(t *testing.T) {
		dist := HaversineDistance(hongdae, hapjeong)
		assert.InDelta(t, 1130, dist, 100)
	})

	t.Run("거리는 대칭이다", func(t *testing.T) {
		assert.Equal(t, HaversineDistance(hongdae, hapjeong), HaversineDistance(hapjeong, hongdae))
	})

	t.Run("위도 0.001도 차이는 약 111m", func(t *testing.T) {
		p := model.Coordinates{Latitude: hongdae.Latitude + 0.001, Longitude: hongdae.Longitude}
		assert.InDelta(t, 111, HaversineDistance(hongdae, p), 2)
	})
}

func TestMidpoint(t *testing.T) {
	mid := Midpoint(hongdae, hapjeong)
	assert.InDelta(t, (hongdae.Latitude+hapjeong.Latitude)/2, mid.Latitude, 1e-9)
	assert.InDelta(t, (hongdae.Longitude+hapjeong.Longitude)/2, mid.Longitude, 1e-9)
}

func TestSortByDistanceFromLocation(t *testing.T) {
	far := &model.Place{PlaceID: "far", Coordinates: model.Coordinates{Latitude: 37.57, Longitude: 126.98}}
	near := &model.Place{PlaceID: "near", Coordinates: model.Coordinates{Latitude: 37.5569, Longitude: 126.9238}}
	mid := &model.Place{PlaceID: "mid", Coordinates: hapjeong}

	places := []*model.Place{far, near, mid}
	SortByDistanceFromLocation(hongdae, places)

	assert.Equal(t, "near", places[0].PlaceID)
	assert.Equal(t, "mid", places[1].PlaceID)
	assert.Equal(t, "far", places[2].PlaceID)
}

func TestBuildTravelSegments(t *testing.T) {
	t.Run("장소가 2개 미만이면 구간 없음", func(t *testing.T) {
		segments, total := BuildTravelSegments([]*model.Place{{Name: "카페"}})
		assert.Empty(t, segments)
		assert.Equal(t, 0.0, total)
	})

	t.Run("총 거리는 구간 거리의 합", func(t *testing.T) {
		places := []*model.Place{
			{Name: "A", Coordinates: hongdae},
			{Name: "B", Coordinates: hapjeong},
			{Name: "C", Coordinates: model.Coordinates{Latitude: 37.5481, Longitude: 126.9227}},
		}
		segments, total := BuildTravelSegments(places)

		assert.Len(t, segments, 2)
		assert.Equal(t, "A", segments[0].From)
		assert.Equal(t, "B", segments[0].To)
		assert.Equal(t, "B", segments[1].From)
		assert.Equal(t, "C", segments[1].To)
		assert.InDelta(t, segments[0].DistanceM+segments[1].DistanceM, total, 1e-9)
	})
}
