package model

// TargetLocation 검색 타깃의 지역 정보
type TargetLocation struct {
	AreaName    string       `json:"area_name"`             // 예: "홍대", "성수동"
	Coordinates *Coordinates `json:"coordinates,omitempty"` // 미지정 시 지역명으로 좌표를 해석
}

// SearchTarget 코스의 한 방문지(스톱)에 대한 검색 요청
type SearchTarget struct {
	Sequence      int            `json:"sequence" validate:"required,min=1,max=5"` // 1부터 시작하는 순번
	Category      string         `json:"category" validate:"required"`             // 카테고리 (한국어 도메인 값)
	Location      TargetLocation `json:"location" validate:"required"`
	SemanticQuery string         `json:"semantic_query" validate:"required"` // 임베딩에 사용하는 자유 서술
}

// ToLatLng 검색 타깃의 좌표를 반환 (좌표 미해석 시 제로값)
func (t *SearchTarget) ToLatLng() Coordinates {
	if t.Location.Coordinates != nil {
		return *t.Location.Coordinates
	}
	return Coordinates{}
}

// HasCoordinates 좌표 해석이 완료되었는지 여부
func (t *SearchTarget) HasCoordinates() bool {
	return t.Location.Coordinates != nil
}

// Demographics 사용자 기본 정보
type Demographics struct {
	Age               int    `json:"age"`
	MBTI              string `json:"mbti"`
	RelationshipStage string `json:"relationship_stage"` // 예: "연애 초기", "장기 연애"
}

// Requirements 코스 추천 시 고려할 제약 조건
type Requirements struct {
	BudgetRange    string `json:"budget_range"`    // 예: "5만원 이하"
	TimePreference string `json:"time_preference"` // 예: "저녁"
	PartySize      int    `json:"party_size"`
	Transportation string `json:"transportation"` // 예: "도보", "대중교통"
}

// UserContext 대화 레이어에서 수집된 사용자 컨텍스트
type UserContext struct {
	Demographics Demographics `json:"demographics"`
	Preferences  []string     `json:"preferences"`
	Requirements Requirements `json:"requirements"`
}

// RecommendRequest 코스 추천 API 의 요청 본문
type RecommendRequest struct {
	SearchTargets []SearchTarget `json:"search_targets" validate:"required,min=1,max=5"`
	UserContext   UserContext    `json:"user_context"`
}

// MaxSequence 요청에 포함된 가장 큰 순번을 반환
func (r *RecommendRequest) MaxSequence() int {
	max := 0
	for _, target := range r.SearchTargets {
		if target.Sequence > max {
			max = target.Sequence
		}
	}
	return max
}
