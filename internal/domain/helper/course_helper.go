package helper

import (
	"DateCourse-App/internal/domain/model"
	"fmt"

	"github.com/google/uuid"
)

// CombinationToCourse 선택된 조합을 최종 코스로 변환한다
func CombinationToCourse(combination *model.CourseCombination, title, reason string) model.Course {
	places := make([]model.CoursePlace, len(combination.Places))
	for i, place := range combination.Places {
		places[i] = model.CoursePlace{
			Sequence:        place.SourceSequence,
			PlaceID:         place.PlaceID,
			Name:            place.Name,
			Category:        place.Category,
			Coordinates:     place.Coordinates,
			Description:     place.Description,
			SimilarityScore: place.SimilarityScore,
		}
	}

	return model.Course{
		CourseID:             fmt.Sprintf("course_%s", uuid.New().String()),
		CourseTitle:          title,
		Places:               places,
		TravelInfo:           combination.TravelSegments,
		TotalDistanceMeters:  combination.TotalDistanceM,
		RecommendationReason: reason,
		QualityScore:         combination.QualityScore,
	}
}

// FallbackCourseTitle 오라클 없이 규칙 기반으로 코스 제목을 생성한다
func FallbackCourseTitle(combination *model.CourseCombination, weather string, index int) string {
	weatherKorean := KoreanWeather(weather)

	if len(combination.Places) >= 2 {
		first := combination.Places[0]
		last := combination.Places[len(combination.Places)-1]
		return fmt.Sprintf("[%s] %s에서 %s까지", weatherKorean, first.Name, last.Name)
	}
	if len(combination.Places) == 1 {
		return fmt.Sprintf("[%s] %s 코스", weatherKorean, combination.Places[0].Name)
	}
	return fmt.Sprintf("[%s] 추천 코스 %d", weatherKorean, index+1)
}

// KoreanWeather 날씨 식별자를 한국어로 변환
func KoreanWeather(weather string) string {
	switch weather {
	case model.WeatherSunny:
		return "맑은 날"
	case model.WeatherRainy:
		return "비 오는 날"
	default:
		return "데이트"
	}
}
