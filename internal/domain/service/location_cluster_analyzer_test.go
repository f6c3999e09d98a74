package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"DateCourse-App/internal/domain/model"
)

func targetAt(sequence int, category string, lat, lng float64) model.SearchTarget {
	return model.SearchTarget{
		Sequence: sequence,
		Category: category,
		Location: model.TargetLocation{
			AreaName:    "홍대",
			Coordinates: &model.Coordinates{Latitude: lat, Longitude: lng},
		},
		SemanticQuery: "분위기 좋은 곳",
	}
}

func TestLocationClusterAnalyzer_SingleRegion(t *testing.T) {
	analyzer := NewLocationClusterAnalyzer()

	// 서로 300m 이내의 타깃 3개 (위도 0.001도 ≈ 111m)
	targets := []model.SearchTarget{
		targetAt(1, model.CategoryRestaurant, 37.5568, 126.9237),
		targetAt(2, model.CategoryCafe, 37.5578, 126.9237),
		targetAt(3, model.CategoryBar, 37.5588, 126.9237),
	}

	t.Run("가까운 타깃들은 하나의 클러스터로 묶인다", func(t *testing.T) {
		analysis := analyzer.Analyze(targets, model.WeatherSunny)

		assert.True(t, analysis.IsSingleRegion())
		assert.Len(t, analysis.Clusters, 1)
		assert.Len(t, analysis.Clusters[0].Members, 3)
	})

	t.Run("맑은 날 정책: 반경 1500m, 거리 제한 1500m", func(t *testing.T) {
		analysis := analyzer.Analyze(targets, model.WeatherSunny)

		assert.Equal(t, 1500, analysis.Clusters[0].SearchRadiusM)
		assert.Equal(t, 1500.0, analysis.DistanceLimit)
		assert.True(t, analysis.HasDistanceLimit())
	})

	t.Run("비 오는 날 정책: 반경 700m, 거리 제한 700m", func(t *testing.T) {
		analysis := analyzer.Analyze(targets, model.WeatherRainy)

		assert.Equal(t, 700, analysis.Clusters[0].SearchRadiusM)
		assert.Equal(t, 700.0, analysis.DistanceLimit)
	})

	t.Run("테이블에 없는 날씨는 기본 정책 1200m", func(t *testing.T) {
		analysis := analyzer.Analyze(targets, "cloudy")

		assert.Equal(t, 1200, analysis.Clusters[0].SearchRadiusM)
		assert.Equal(t, 1200.0, analysis.DistanceLimit)
	})

	t.Run("중심은 멤버 좌표의 산술 평균", func(t *testing.T) {
		analysis := analyzer.Analyze(targets, model.WeatherSunny)

		center := analysis.Clusters[0].Center
		assert.InDelta(t, 37.5578, center.Latitude, 1e-6)
		assert.InDelta(t, 126.9237, center.Longitude, 1e-6)
	})
}

func TestLocationClusterAnalyzer_MultiRegion(t *testing.T) {
	analyzer := NewLocationClusterAnalyzer()

	// 홍대와 강남: 약 10km 떨어진 두 지역
	targets := []model.SearchTarget{
		targetAt(1, model.CategoryRestaurant, 37.5568, 126.9237),
		targetAt(2, model.CategoryCafe, 37.4979, 127.0276),
		targetAt(3, model.CategoryBar, 37.5570, 126.9240),
	}

	analysis := analyzer.Analyze(targets, model.WeatherSunny)

	t.Run("먼 타깃은 별도 클러스터가 된다", func(t *testing.T) {
		assert.Equal(t, model.AnalysisMultiRegion, analysis.AnalysisType)
		assert.Len(t, analysis.Clusters, 2)
	})

	t.Run("다지역은 모든 클러스터가 표준 반경 1000m", func(t *testing.T) {
		for _, cluster := range analysis.Clusters {
			assert.Equal(t, model.MultiRegionSearchRadiusM, cluster.SearchRadiusM)
		}
	})

	t.Run("다지역은 거리 제한이 없다", func(t *testing.T) {
		assert.False(t, analysis.HasDistanceLimit())
	})

	t.Run("순번 3은 첫 번째 클러스터(홍대)에 속한다", func(t *testing.T) {
		cluster := analysis.ClusterForSequence(3)
		assert.NotNil(t, cluster)
		assert.Equal(t, 1, cluster.ClusterID)
		assert.Same(t, cluster, analysis.ClusterForSequence(1))
	})
}

func TestLocationClusterAnalyzer_Deterministic(t *testing.T) {
	analyzer := NewLocationClusterAnalyzer()
	targets := []model.SearchTarget{
		targetAt(1, model.CategoryRestaurant, 37.5568, 126.9237),
		targetAt(2, model.CategoryCafe, 37.4979, 127.0276),
	}

	// 같은 입력 순서는 항상 같은 결과를 만든다
	first := analyzer.Analyze(targets, model.WeatherSunny)
	second := analyzer.Analyze(targets, model.WeatherSunny)

	assert.Equal(t, first.AnalysisType, second.AnalysisType)
	assert.Equal(t, len(first.Clusters), len(second.Clusters))
	for i := range first.Clusters {
		assert.Equal(t, first.Clusters[i].Center, second.Clusters[i].Center)
	}
}
