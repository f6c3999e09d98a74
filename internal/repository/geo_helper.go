package repository

import (
	"github.com/paulmach/orb"

	"DateCourse-App/internal/domain/model"
)

// GeoPoint PostGIS POINT 타입의 JSON 표현
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// CoordinatesToGeoPoint model.Coordinates 를 PostGIS POINT 형식으로 변환
func CoordinatesToGeoPoint(coordinates *model.Coordinates) *GeoPoint {
	if coordinates == nil {
		return nil
	}

	point := orb.Point{coordinates.Longitude, coordinates.Latitude}

	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

// GeoPointToCoordinates PostGIS POINT 를 model.Coordinates 로 변환
func GeoPointToCoordinates(geoPoint *GeoPoint) *model.Coordinates {
	if geoPoint == nil || len(geoPoint.Coordinates) < 2 {
		return nil
	}

	point := orb.Point{geoPoint.Coordinates[0], geoPoint.Coordinates[1]}

	return &model.Coordinates{
		Latitude:  point.Lat(),
		Longitude: point.Lon(),
	}
}

// SearchBound 중심 좌표와 반경(미터)으로 검색용 경계 박스를 생성.
// 벡터 검색 전 인덱스 친화적인 사전 필터로 사용한다.
func SearchBound(center model.Coordinates, radiusMeters int) orb.Bound {
	point := orb.Point{center.Longitude, center.Latitude}

	// 위도 1도 ≈ 111km 근사로 미터를 도 단위 패딩으로 변환
	padding := float64(radiusMeters) / 111000.0

	bound := orb.Bound{Min: point, Max: point}
	return bound.Pad(padding)
}
