package model

import "time"

// 날씨 브랜치 식별자
const (
	WeatherSunny = "sunny"
	WeatherRainy = "rainy"
)

// 브랜치 처리 상태
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusFailed  = "failed"
)

// CoursePlace 최종 코스에 포함된 장소 정보
type CoursePlace struct {
	Sequence        int         `json:"sequence"`
	PlaceID         string      `json:"place_id"`
	Name            string      `json:"name"`
	Category        string      `json:"category"`
	Coordinates     Coordinates `json:"coordinates"`
	Description     string      `json:"description"`
	SimilarityScore float64     `json:"similarity_score"`
}

// Course 최종 추천 코스
type Course struct {
	CourseID             string          `json:"course_id"`
	CourseTitle          string          `json:"course_title"`
	Places               []CoursePlace   `json:"places"`
	TravelInfo           []TravelSegment `json:"travel_info"`
	TotalDistanceMeters  float64         `json:"total_distance_meters"`
	RecommendationReason string          `json:"recommendation_reason"`
	QualityScore         float64         `json:"quality_score"`
}

// CategoryConversion 우천 시 적용된 카테고리 치환 기록
type CategoryConversion struct {
	Sequence     int    `json:"sequence"`
	FromCategory string `json:"from_category"`
	ToCategory   string `json:"to_category"`
}

// WeatherScenarioResult 한 날씨 브랜치의 처리 결과
type WeatherScenarioResult struct {
	Weather             string               `json:"weather"` // sunny | rainy
	Status              string               `json:"status"`  // success | failed
	Courses             []Course             `json:"courses"` // 최대 3개
	AttemptLabel        string               `json:"attempt_label"`  // 성공한 검색 티어 라벨
	RadiusUsedM         int                  `json:"radius_used_m"`  // 최종적으로 사용된 검색 반경
	CategoryConversions []CategoryConversion `json:"category_conversions"`
	ErrorMessage        string               `json:"error_message,omitempty"`
}

// FailedScenarioResult 실패한 브랜치 결과를 생성
func FailedScenarioResult(weather, message string) *WeatherScenarioResult {
	return &WeatherScenarioResult{
		Weather:      weather,
		Status:       StatusFailed,
		Courses:      []Course{},
		ErrorMessage: message,
	}
}

// RecommendResponse 코스 추천 API 의 응답 본문
type RecommendResponse struct {
	RequestID string                 `json:"request_id"`
	Status    string                 `json:"status"` // success | partial | failed
	Sunny     *WeatherScenarioResult `json:"sunny"`
	Rainy     *WeatherScenarioResult `json:"rainy"`
}

// OverallStatus 두 브랜치 결과로부터 전체 상태를 판정
func OverallStatus(sunny, rainy *WeatherScenarioResult) string {
	sunnyOK := sunny != nil && sunny.Status == StatusSuccess
	rainyOK := rainy != nil && rainy.Status == StatusSuccess

	switch {
	case sunnyOK && rainyOK:
		return StatusSuccess
	case sunnyOK || rainyOK:
		return StatusPartial
	default:
		return StatusFailed
	}
}

// FirestoreRecommendation Firestore 에 저장하는 추천 결과 스냅샷
type FirestoreRecommendation struct {
	RequestID string                 `firestore:"request_id"`
	Status    string                 `firestore:"status"`
	Sunny     *WeatherScenarioResult `firestore:"sunny"`
	Rainy     *WeatherScenarioResult `firestore:"rainy"`
	ExpireAt  time.Time              `firestore:"expireAt"`
}

// ToFirestoreRecommendation 응답을 TTL 이 부여된 저장용 구조체로 변환
func (r *RecommendResponse) ToFirestoreRecommendation(ttlHours int) *FirestoreRecommendation {
	return &FirestoreRecommendation{
		RequestID: r.RequestID,
		Status:    r.Status,
		Sunny:     r.Sunny,
		Rainy:     r.Rainy,
		ExpireAt:  time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToRecommendResponse 저장용 구조체를 응답으로 복원
func (f *FirestoreRecommendation) ToRecommendResponse() *RecommendResponse {
	return &RecommendResponse{
		RequestID: f.RequestID,
		Status:    f.Status,
		Sunny:     f.Sunny,
		Rainy:     f.Rainy,
	}
}

// CourseSelection 랭킹 오라클이 반환하는 선택 결과 1건
type CourseSelection struct {
	SelectedIndex int    `json:"selected_index"`
	Title         string `json:"title"`
	Reason        string `json:"reason"`
}
