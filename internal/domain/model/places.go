package model

// Coordinates 위도/경도를 나타내는 기본 타입
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// Place 벡터 검색으로 조회된 장소 후보를 나타내는 모델
type Place struct {
	PlaceID         string      `json:"place_id" db:"place_id"`                 // 장소 고유 ID
	Name            string      `json:"name" db:"name"`                         // 장소명
	Category        string      `json:"category" db:"category"`                 // 카테고리 (한국어 도메인 값)
	Coordinates     Coordinates `json:"coordinates"`                            // 위치 정보
	Description     string      `json:"description" db:"description"`           // 장소 설명
	SimilarityScore float64     `json:"similarity_score" db:"similarity_score"` // 벡터 유사도 (0~1)
	Address         *string     `json:"address,omitempty" db:"address"`         // 주소 (NULLABLE)
	Price           *int        `json:"price,omitempty" db:"price"`             // 가격대 (NULLABLE)

	// 검색 시점에 부여되는 메타데이터
	SourceSequence int    `json:"source_sequence"` // 이 후보를 만든 검색 타깃의 순번
	SourceCategory string `json:"source_category"` // 이 후보를 만든 검색 타깃의 카테고리
}

// GetAddress 주소가 있으면 값을, 없으면 빈 문자열을 반환
func (p *Place) GetAddress() string {
	if p.Address != nil {
		return *p.Address
	}
	return ""
}

// SetAddress 주소를 설정 (빈 문자열이면 nil 유지)
func (p *Place) SetAddress(address string) {
	if address != "" {
		p.Address = &address
	}
}

// Geometry PostGIS GEOMETRY 타입에 대응하는 구조체
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// ToGeometry Coordinates 를 PostGIS GEOMETRY 타입으로 변환
func (c *Coordinates) ToGeometry() *Geometry {
	return &Geometry{
		Type:        "Point",
		Coordinates: []float64{c.Longitude, c.Latitude},
	}
}

// FromGeometry PostGIS GEOMETRY 타입에서 Coordinates 로 변환
func (c *Coordinates) FromGeometry(g *Geometry) {
	if g != nil && len(g.Coordinates) >= 2 {
		c.Longitude = g.Coordinates[0]
		c.Latitude = g.Coordinates[1]
	}
}
