package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"DateCourse-App/internal/domain/model"
)

const kakaoLocalBaseURL = "https://dapi.kakao.com/v2/local/search/keyword.json"

// KakaoAreaProvider 카카오 로컬 API 로 지역명을 좌표로 해석하는 프로바이더
type KakaoAreaProvider struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewKakaoAreaProvider 새로운 KakaoAreaProvider 인스턴스를 생성
func NewKakaoAreaProvider(apiKey string) *KakaoAreaProvider {
	return &KakaoAreaProvider{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: kakaoLocalBaseURL,
	}
}

// kakaoKeywordResponse 카카오 키워드 검색 API 응답
type kakaoKeywordResponse struct {
	Documents []struct {
		PlaceName string `json:"place_name"`
		X         string `json:"x"` // 경도
		Y         string `json:"y"` // 위도
	} `json:"documents"`
	Meta struct {
		TotalCount int `json:"total_count"`
	} `json:"meta"`
}

// ResolveArea 지역명("홍대", "성수동" 등)을 대표 좌표로 해석
func (p *KakaoAreaProvider) ResolveArea(ctx context.Context, areaName string) (*model.Coordinates, error) {
	if areaName == "" {
		return nil, fmt.Errorf("지역명이 비어 있습니다")
	}

	params := url.Values{}
	params.Set("query", areaName)
	params.Set("size", "1")

	requestURL := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("카카오 API 요청 생성 실패: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("카카오 API 호출 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("카카오 API 오류 응답: HTTP %d", resp.StatusCode)
	}

	var result kakaoKeywordResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("카카오 API 응답 파싱 실패: %w", err)
	}

	if len(result.Documents) == 0 {
		return nil, fmt.Errorf("지역명 '%s' 에 해당하는 장소를 찾지 못했습니다", areaName)
	}

	doc := result.Documents[0]
	lng, err := strconv.ParseFloat(doc.X, 64)
	if err != nil {
		return nil, fmt.Errorf("경도 파싱 실패 (%s): %w", doc.X, err)
	}
	lat, err := strconv.ParseFloat(doc.Y, 64)
	if err != nil {
		return nil, fmt.Errorf("위도 파싱 실패 (%s): %w", doc.Y, err)
	}

	log.Printf("📍 지역명 해석: %s -> %s (%.6f, %.6f)", areaName, doc.PlaceName, lat, lng)

	return &model.Coordinates{Latitude: lat, Longitude: lng}, nil
}
