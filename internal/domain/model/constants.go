package model

import "math"

// CategoryConstants 애플리케이션에서 사용하는 장소 카테고리 상수
const (
	CategoryRestaurant    = "음식점"
	CategoryCafe          = "카페"
	CategoryBar           = "술집"
	CategoryCulture       = "문화시설"
	CategoryShopping      = "쇼핑"
	CategoryEntertainment = "엔터테인먼트"
	CategoryOutdoor       = "야외활동"
	CategoryRest          = "휴식시설"
	CategoryParking       = "주차장"
	CategoryOther         = "기타"
)

// GetAllCategories 전체 카테고리 목록을 반환
func GetAllCategories() []string {
	return []string{
		CategoryRestaurant,
		CategoryCafe,
		CategoryBar,
		CategoryCulture,
		CategoryShopping,
		CategoryEntertainment,
		CategoryOutdoor,
		CategoryRest,
		CategoryParking,
		CategoryOther,
	}
}

// IsValidCategory 카테고리 도메인 값인지 확인
func IsValidCategory(category string) bool {
	for _, c := range GetAllCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// ClusteringThresholdM 클러스터 소속 판정에 사용하는 근접 임계값 (m)
const ClusteringThresholdM = 800.0

// MultiRegionSearchRadiusM 다지역 시나리오에서 모든 클러스터에 부여하는 표준 반경 (m)
const MultiRegionSearchRadiusM = 1000

// RegionPolicy 단일 지역 시나리오의 날씨별 검색 반경/거리 제한 정책
type RegionPolicy struct {
	SearchRadiusM  int
	DistanceLimitM float64
}

// SingleRegionPolicies 날씨 → 정책 테이블 (수작업 튜닝 값, 그대로 유지)
var SingleRegionPolicies = map[string]RegionPolicy{
	"sunny": {SearchRadiusM: 1500, DistanceLimitM: 1500},
	"rainy": {SearchRadiusM: 700, DistanceLimitM: 700},
	"hot":   {SearchRadiusM: 1000, DistanceLimitM: 1000},
	"cold":  {SearchRadiusM: 1000, DistanceLimitM: 1000},
}

// DefaultRegionPolicy 테이블에 없는 날씨에 적용하는 기본 정책
var DefaultRegionPolicy = RegionPolicy{SearchRadiusM: 1200, DistanceLimitM: 1200}

// GetRegionPolicy 날씨에 해당하는 단일 지역 정책을 반환
func GetRegionPolicy(weather string) RegionPolicy {
	if policy, ok := SingleRegionPolicies[weather]; ok {
		return policy
	}
	return DefaultRegionPolicy
}

// UnlimitedDistance 다지역 시나리오의 거리 제한 (무제한)
func UnlimitedDistance() float64 {
	return math.Inf(1)
}

// TopKTiers 후보 검색 재시도 사다리의 Top-K 단계 (순서 고정)
var TopKTiers = []int{5, 8, 12}

// RadiusExpansionFactor 최종 반경 확대 패스의 배율
const RadiusExpansionFactor = 1.5

// RadiusExpansionTopK 반경 확대 패스에서 고정 사용하는 Top-K (2차 티어 값)
const RadiusExpansionTopK = 8

// MinCandidatesPerTarget 타깃별 성공 판정에 필요한 최소 후보 수
const MinCandidatesPerTarget = 2

// AttemptLabelExpanded 반경 확대 최종 패스의 라벨
const AttemptLabelExpanded = "최후 (반경 확대, Top-K=8)"

// maxCombinationsByStops 스톱 수 → 조합 상한 (조합 폭발 방지 예산)
var maxCombinationsByStops = map[int]int{
	1: 15,
	2: 13,
	3: 12,
	4: 11,
	5: 10,
}

// MaxCombinationsFor 스톱 수에 해당하는 조합 상한을 반환
func MaxCombinationsFor(stopCount int) int {
	if budget, ok := maxCombinationsByStops[stopCount]; ok {
		return budget
	}
	return 10
}

// MaxCombinationsForGPT 랭킹 오라클에 전달하는 최대 후보 수
const MaxCombinationsForGPT = 10

// MinCombinationsForGPT 오라클 호출 전에 확보하려는 최소 후보 수
const MinCombinationsForGPT = 3

// 품질 점수 가중치 (40/40/20, 수작업 튜닝 값 그대로 유지)
const (
	QualityWeightSimilarity = 0.4
	QualityWeightDistance   = 0.4
	QualityWeightDiversity  = 0.2
)

// DistanceNormalizationM 거리 점수 정규화 기준 (10km)
const DistanceNormalizationM = 10000.0

// DiversityKeywordCount 다양성 점수에 사용하는 설명 키워드 수 (앞 5토큰)
const DiversityKeywordCount = 5

// IndoorSubstitutes 우천 시 실외 카테고리를 치환할 실내 대안 (라운드로빈 순서)
var IndoorSubstitutes = []string{
	CategoryCulture,
	CategoryEntertainment,
	CategoryRest,
	CategoryCafe,
}

// OutdoorCategories 우천 시 치환 대상이 되는 카테고리
var OutdoorCategories = map[string]bool{
	CategoryOutdoor: true,
	CategoryParking: true,
}

// IndoorQueryRewrites 치환 시 시맨틱 쿼리에 덧붙이는 실내 표현
var IndoorQueryRewrites = map[string]string{
	CategoryCulture:       "실내 문화 공간",
	CategoryEntertainment: "실내 엔터테인먼트",
	CategoryRest:          "실내 휴식 공간",
	CategoryCafe:          "아늑한 실내 카페",
}

// 거리 필터의 스톱 수/날씨 적응 배율
const (
	FilterTotalRelax4Stops  = 1.8  // 4개 스톱: 총 거리 완화
	FilterTotalRelax5Stops  = 2.0  // 5개 스톱: 총 거리 완화
	FilterSegmentRelaxRatio = 1.5  // 4개 이상 스톱: 구간 거리 완화
	FilterRainyTightenRatio = 0.75 // 우천: 총 거리 강화
)

// RecommendTimeout 전체 날씨 페어 처리의 제한 시간 (초)
const RecommendTimeoutSeconds = 90

// RecommendationTTLHours 저장된 추천 결과의 유효 시간
const RecommendationTTLHours = 2
