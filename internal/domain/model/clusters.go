package model

import "math"

// AnalysisType 위치 분석 결과의 종류
const (
	AnalysisSingleRegion = "single_region"
	AnalysisMultiRegion  = "multi_region"
)

// LocationCluster 서로 가까운 검색 타깃들의 공간 그룹
type LocationCluster struct {
	ClusterID     int            `json:"cluster_id"`
	Members       []SearchTarget `json:"members"`
	Center        Coordinates    `json:"center"`          // 멤버 좌표의 산술 평균 (삽입마다 재계산)
	SearchRadiusM int            `json:"search_radius_m"` // 정책으로 부여되는 검색 반경
}

// AddMember 타깃을 클러스터에 추가하고 중심 좌표를 재계산한다
func (c *LocationCluster) AddMember(target SearchTarget) {
	c.Members = append(c.Members, target)

	var sumLat, sumLng float64
	for _, m := range c.Members {
		coord := m.ToLatLng()
		sumLat += coord.Latitude
		sumLng += coord.Longitude
	}
	n := float64(len(c.Members))
	c.Center = Coordinates{
		Latitude:  sumLat / n,
		Longitude: sumLng / n,
	}
}

// ContainsSequence 해당 순번의 타깃이 포함되어 있는지 확인
func (c *LocationCluster) ContainsSequence(sequence int) bool {
	for _, m := range c.Members {
		if m.Sequence == sequence {
			return true
		}
	}
	return false
}

// LocationAnalysis 클러스터링 분석 결과
type LocationAnalysis struct {
	AnalysisType  string             `json:"analysis_type"` // single_region | multi_region
	Clusters      []*LocationCluster `json:"clusters"`
	DistanceLimit float64            `json:"distance_limit"` // 스톱 간 허용 이동 거리 (m), 다지역은 무제한
	Summary       string             `json:"summary"`
}

// IsSingleRegion 단일 지역 시나리오 여부
func (a *LocationAnalysis) IsSingleRegion() bool {
	return a.AnalysisType == AnalysisSingleRegion
}

// HasDistanceLimit 거리 제한이 적용되는지 여부
func (a *LocationAnalysis) HasDistanceLimit() bool {
	return !math.IsInf(a.DistanceLimit, 1)
}

// ClusterForSequence 순번이 속한 클러스터를 반환 (없으면 nil)
func (a *LocationAnalysis) ClusterForSequence(sequence int) *LocationCluster {
	for _, cluster := range a.Clusters {
		if cluster.ContainsSequence(sequence) {
			return cluster
		}
	}
	return nil
}
