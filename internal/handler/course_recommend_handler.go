package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"DateCourse-App/internal/domain/model"
	"DateCourse-App/internal/infrastructure/maps"
	"DateCourse-App/internal/usecase"
)

// CourseRecommendHandler 코스 추천 API 핸들러
type CourseRecommendHandler struct {
	recommendUseCase usecase.CourseRecommendUseCase
	areaProvider     *maps.KakaoAreaProvider
}

// NewCourseRecommendHandler 새로운 CourseRecommendHandler 인스턴스를 생성
func NewCourseRecommendHandler(recommendUseCase usecase.CourseRecommendUseCase, areaProvider *maps.KakaoAreaProvider) *CourseRecommendHandler {
	return &CourseRecommendHandler{
		recommendUseCase: recommendUseCase,
		areaProvider:     areaProvider,
	}
}

// PostRecommend 코스 추천을 생성하는 엔드포인트
// POST /api/v1/courses/recommend
func (h *CourseRecommendHandler) PostRecommend(c *gin.Context) {
	var req model.RecommendRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "요청 형식이 올바르지 않습니다",
			"details": err.Error(),
		})
		return
	}

	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "검증 오류",
			"details": err.Error(),
		})
		return
	}

	// 좌표가 없는 타깃은 지역명으로 좌표를 해석
	if err := h.resolveAreaCoordinates(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "지역명 해석 실패",
			"details": err.Error(),
		})
		return
	}

	response, err := h.recommendUseCase.RecommendCourses(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "코스 추천 생성에 실패했습니다",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetRecommendation 저장된 추천 결과를 조회하는 엔드포인트
// GET /api/v1/courses/recommendations/:id
func (h *CourseRecommendHandler) GetRecommendation(c *gin.Context) {
	requestID := c.Param("id")
	if requestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "request_id가 지정되지 않았습니다",
		})
		return
	}

	response, err := h.recommendUseCase.GetRecommendation(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, model.ErrRecommendationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "추천 결과를 찾을 수 없습니다 (만료 또는 잘못된 ID)",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "추천 결과 조회에 실패했습니다",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// validateRequest 요청 본문의 상세 검증
func (h *CourseRecommendHandler) validateRequest(req *model.RecommendRequest) error {
	if len(req.SearchTargets) < 1 || len(req.SearchTargets) > 5 {
		return &ValidationError{Field: "search_targets", Message: "검색 타깃은 1개 이상 5개 이하여야 합니다"}
	}

	// 순번은 1..N 을 빠짐없이, 중복 없이 덮어야 한다
	seen := make(map[int]bool, len(req.SearchTargets))
	for _, target := range req.SearchTargets {
		if target.Sequence < 1 || target.Sequence > len(req.SearchTargets) {
			return &ValidationError{
				Field:   "search_targets.sequence",
				Message: fmt.Sprintf("순번은 1부터 %d 사이여야 합니다", len(req.SearchTargets)),
			}
		}
		if seen[target.Sequence] {
			return &ValidationError{
				Field:   "search_targets.sequence",
				Message: fmt.Sprintf("순번 %d 가 중복되었습니다", target.Sequence),
			}
		}
		seen[target.Sequence] = true
	}

	for _, target := range req.SearchTargets {
		if !model.IsValidCategory(target.Category) {
			return &ValidationError{
				Field:   "search_targets.category",
				Message: fmt.Sprintf("'%s' 는 유효한 카테고리가 아닙니다", target.Category),
			}
		}

		if target.SemanticQuery == "" {
			return &ValidationError{Field: "search_targets.semantic_query", Message: "시맨틱 쿼리는 필수입니다"}
		}

		if target.Location.Coordinates == nil && target.Location.AreaName == "" {
			return &ValidationError{Field: "search_targets.location", Message: "좌표 또는 지역명 중 하나는 필수입니다"}
		}

		if coords := target.Location.Coordinates; coords != nil {
			if coords.Latitude < -90 || coords.Latitude > 90 {
				return &ValidationError{Field: "search_targets.location.latitude", Message: "위도는 -90에서 90 사이여야 합니다"}
			}
			if coords.Longitude < -180 || coords.Longitude > 180 {
				return &ValidationError{Field: "search_targets.location.longitude", Message: "경도는 -180에서 180 사이여야 합니다"}
			}
		}
	}

	return nil
}

// resolveAreaCoordinates 좌표가 없는 타깃의 지역명을 좌표로 해석
func (h *CourseRecommendHandler) resolveAreaCoordinates(c *gin.Context, req *model.RecommendRequest) error {
	// 같은 지역명은 한 번만 해석한다
	resolved := make(map[string]*model.Coordinates)

	for i := range req.SearchTargets {
		target := &req.SearchTargets[i]
		if target.HasCoordinates() {
			continue
		}

		areaName := target.Location.AreaName
		if coords, ok := resolved[areaName]; ok {
			target.Location.Coordinates = coords
			continue
		}

		coords, err := h.areaProvider.ResolveArea(c.Request.Context(), areaName)
		if err != nil {
			return fmt.Errorf("지역명 '%s' 해석 실패: %w", areaName, err)
		}
		resolved[areaName] = coords
		target.Location.Coordinates = coords
	}

	return nil
}

// ValidationError 검증 오류를 나타냄
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
