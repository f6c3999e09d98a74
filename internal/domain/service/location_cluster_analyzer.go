package service

import (
	"DateCourse-App/internal/domain/helper"
	"DateCourse-App/internal/domain/model"
	"fmt"
	"log"
)

// LocationClusterAnalyzer 검색 타깃들을 공간 클러스터로 묶고
// 단일/다지역 여부에 따라 검색 반경과 거리 제한 정책을 부여한다
type LocationClusterAnalyzer struct {
	thresholdM float64
}

// NewLocationClusterAnalyzer 새로운 LocationClusterAnalyzer 인스턴스를 생성
func NewLocationClusterAnalyzer() *LocationClusterAnalyzer {
	return &LocationClusterAnalyzer{
		thresholdM: model.ClusteringThresholdM,
	}
}

// Analyze 타깃 목록을 입력 순서대로 그리디 클러스터링한다.
// 각 타깃은 기존 클러스터 중심과의 거리가 임계값 이하면 가장 가까운 클러스터에,
// 아니면 새 클러스터에 배정된다. 중심은 삽입마다 멤버 평균으로 재계산된다.
// 입력 순서에 따라 결과가 달라질 수 있는 알려진 비최적성이지만 호환성을 위해 유지한다.
func (a *LocationClusterAnalyzer) Analyze(targets []model.SearchTarget, weather string) *model.LocationAnalysis {
	var clusters []*model.LocationCluster

	for _, target := range targets {
		coord := target.ToLatLng()

		var nearest *model.LocationCluster
		nearestDist := a.thresholdM
		for _, cluster := range clusters {
			dist := helper.HaversineDistance(coord, cluster.Center)
			if dist <= nearestDist {
				nearest = cluster
				nearestDist = dist
			}
		}

		if nearest != nil {
			nearest.AddMember(target)
			continue
		}

		newCluster := &model.LocationCluster{ClusterID: len(clusters) + 1}
		newCluster.AddMember(target)
		clusters = append(clusters, newCluster)
	}

	analysis := a.assignPolicies(clusters, weather)
	log.Printf("📍 위치 분석 완료: %s (클러스터 %d개, 타깃 %d개)", analysis.AnalysisType, len(clusters), len(targets))
	return analysis
}

// assignPolicies 클러스터링 결과에 따라 반경/거리 제한 정책을 부여한다
func (a *LocationClusterAnalyzer) assignPolicies(clusters []*model.LocationCluster, weather string) *model.LocationAnalysis {
	if len(clusters) == 1 {
		// 단일 지역: 날씨별 정책 테이블에서 반경과 거리 제한을 조회
		policy := model.GetRegionPolicy(weather)
		clusters[0].SearchRadiusM = policy.SearchRadiusM

		return &model.LocationAnalysis{
			AnalysisType:  model.AnalysisSingleRegion,
			Clusters:      clusters,
			DistanceLimit: policy.DistanceLimitM,
			Summary: fmt.Sprintf("단일 지역 (날씨: %s, 반경: %dm, 거리 제한: %.0fm)",
				weather, policy.SearchRadiusM, policy.DistanceLimitM),
		}
	}

	// 다지역: 사용자가 명시적으로 서로 다른 지역을 요청한 경우이므로
	// 모든 클러스터에 표준 반경을 부여하고 지역 간 이동 거리는 제한하지 않는다
	for _, cluster := range clusters {
		cluster.SearchRadiusM = model.MultiRegionSearchRadiusM
	}

	return &model.LocationAnalysis{
		AnalysisType:  model.AnalysisMultiRegion,
		Clusters:      clusters,
		DistanceLimit: model.UnlimitedDistance(),
		Summary:       fmt.Sprintf("다지역 (%d개 지역, 반경: %dm, 거리 제한 없음)", len(clusters), model.MultiRegionSearchRadiusM),
	}
}
