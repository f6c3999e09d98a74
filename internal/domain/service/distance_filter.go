package service

import (
	"DateCourse-App/internal/domain/model"
	"log"
)

// DistanceQualityFilter 총 이동 거리와 구간 거리 기준으로 조합을 거른다.
// 허용치는 날씨(우천 시 강화)와 스톱 수(많을수록 완화)에 따라 조정되며,
// 생존 조합이 전무할 때는 완화 폴백으로 빈 결과를 피한다.
type DistanceQualityFilter struct{}

// NewDistanceQualityFilter 새로운 DistanceQualityFilter 인스턴스를 생성
func NewDistanceQualityFilter() *DistanceQualityFilter {
	return &DistanceQualityFilter{}
}

// Accept 조합 하나가 거리 기준을 통과하는지 판정한다
func (f *DistanceQualityFilter) Accept(combination *model.CourseCombination, analysis *model.LocationAnalysis, weather string) bool {
	stopCount := len(combination.Places)

	if !analysis.IsSingleRegion() {
		// 다지역: 지역 간 이동은 사용자가 의도한 것이므로 총 거리는 제한하지 않는다.
		// 구간 검사는 같은 클러스터 내부의 이동에만 적용한다.
		return f.acceptMultiRegion(combination, analysis, weather, stopCount)
	}

	totalCap, segmentCap := f.adjustedCaps(analysis.DistanceLimit, weather, stopCount)

	if combination.TotalDistanceM > totalCap {
		return false
	}

	violations := f.countSegmentViolations(combination.TravelSegments, segmentCap)
	return f.tolerateViolations(violations, stopCount)
}

// acceptMultiRegion 다지역 조합 판정: 클러스터 내부 구간만 검사한다
func (f *DistanceQualityFilter) acceptMultiRegion(combination *model.CourseCombination, analysis *model.LocationAnalysis, weather string, stopCount int) bool {
	policy := model.GetRegionPolicy(weather)
	_, segmentCap := f.adjustedCaps(policy.DistanceLimitM, weather, stopCount)

	violations := 0
	for i, segment := range combination.TravelSegments {
		from := combination.Places[i]
		to := combination.Places[i+1]

		fromCluster := analysis.ClusterForSequence(from.SourceSequence)
		toCluster := analysis.ClusterForSequence(to.SourceSequence)
		if fromCluster == nil || toCluster == nil || fromCluster.ClusterID != toCluster.ClusterID {
			// 클러스터 간 이동은 검사 대상이 아니다
			continue
		}
		if segment.DistanceM > segmentCap {
			violations++
		}
	}

	return f.tolerateViolations(violations, stopCount)
}

// adjustedCaps 날씨/스톱 수에 따라 조정된 (총 거리, 구간 거리) 허용치를 계산한다
func (f *DistanceQualityFilter) adjustedCaps(baseLimit float64, weather string, stopCount int) (totalCap, segmentCap float64) {
	totalCap = baseLimit
	segmentCap = baseLimit

	// 스톱이 많을수록 거리가 기계적으로 누적되므로 완화한다
	switch {
	case stopCount >= 5:
		totalCap *= model.FilterTotalRelax5Stops
		segmentCap *= model.FilterSegmentRelaxRatio
	case stopCount == 4:
		totalCap *= model.FilterTotalRelax4Stops
		segmentCap *= model.FilterSegmentRelaxRatio
	}

	// 우천에는 긴 야외 이동을 피하도록 강화한다
	if weather == model.WeatherRainy {
		totalCap *= model.FilterRainyTightenRatio
	}

	return totalCap, segmentCap
}

// countSegmentViolations 구간 허용치를 초과한 구간 수를 센다
func (f *DistanceQualityFilter) countSegmentViolations(segments []model.TravelSegment, segmentCap float64) int {
	violations := 0
	for _, segment := range segments {
		if segment.DistanceM > segmentCap {
			violations++
		}
	}
	return violations
}

// tolerateViolations 구간 위반 허용 규칙: 4개 이상 스톱에서는 1건까지 용인
func (f *DistanceQualityFilter) tolerateViolations(violations, stopCount int) bool {
	if violations == 0 {
		return true
	}
	if stopCount >= 4 && violations == 1 {
		return true
	}
	return false
}

// Apply 조합 목록에 필터를 적용한다.
// 우천이고 생존 조합이 전무하면 기본 거리 검사만으로 재시도하고,
// 그래도 없으면 원본 조합 전체를 그대로 수용한다 (빈 결과 방지).
func (f *DistanceQualityFilter) Apply(combinations []*model.CourseCombination, analysis *model.LocationAnalysis, weather string) []*model.CourseCombination {
	var accepted []*model.CourseCombination
	for _, combination := range combinations {
		if f.Accept(combination, analysis, weather) {
			accepted = append(accepted, combination)
		}
	}

	if len(accepted) > 0 || weather != model.WeatherRainy {
		return accepted
	}

	// 우천 비상 완화 1단계: 클러스터 정책을 무시한 기본 검사만 적용
	log.Printf("🌧️ 우천 비상 완화: 기본 거리 검사로 재시도")
	for _, combination := range combinations {
		if f.BasicAccept(combination) {
			accepted = append(accepted, combination)
		}
	}
	if len(accepted) > 0 {
		return accepted
	}

	// 우천 비상 완화 2단계: 빈 결과 대신 원본 전체를 수용
	log.Printf("🌧️ 우천 비상 완화: 전체 조합 강제 수용 (%d개)", len(combinations))
	return combinations
}

// BasicAccept 클러스터 비인지 기본 검사: 총 거리가 정규화 기준(10km) 이내인지만 본다
func (f *DistanceQualityFilter) BasicAccept(combination *model.CourseCombination) bool {
	return combination.TotalDistanceM <= model.DistanceNormalizationM
}
