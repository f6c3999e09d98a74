package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"DateCourse-App/internal/domain/model"
)

func TestGPTCourseSelector_ParseResponse(t *testing.T) {
	selector := &GPTCourseSelector{}

	t.Run("순수 JSON 배열", func(t *testing.T) {
		selections, err := selector.parseResponse(`[{"selected_index": 1, "title": "홍대 코스", "reason": "좋아서"}]`)

		assert.NoError(t, err)
		assert.Len(t, selections, 1)
		assert.Equal(t, 1, selections[0].SelectedIndex)
		assert.Equal(t, "홍대 코스", selections[0].Title)
	})

	t.Run("마크다운 코드 블록 제거", func(t *testing.T) {
		content := "```json\n[{\"selected_index\": 0, \"title\": \"코스\", \"reason\": \"이유\"}]\n```"
		selections, err := selector.parseResponse(content)

		assert.NoError(t, err)
		assert.Len(t, selections, 1)
	})

	t.Run("배열 앞뒤의 잡설 무시", func(t *testing.T) {
		content := `추천 결과입니다: [{"selected_index": 2, "title": "코스", "reason": "이유"}] 참고하세요.`
		selections, err := selector.parseResponse(content)

		assert.NoError(t, err)
		assert.Equal(t, 2, selections[0].SelectedIndex)
	})

	t.Run("4개 이상은 3개로 자른다", func(t *testing.T) {
		content := `[{"selected_index": 0}, {"selected_index": 1}, {"selected_index": 2}, {"selected_index": 3}]`
		selections, err := selector.parseResponse(content)

		assert.NoError(t, err)
		assert.Len(t, selections, 3)
	})

	t.Run("배열이 없으면 오류", func(t *testing.T) {
		_, err := selector.parseResponse("죄송합니다, 추천할 수 없습니다.")
		assert.Error(t, err)
	})

	t.Run("깨진 JSON 은 오류", func(t *testing.T) {
		_, err := selector.parseResponse(`[{"selected_index": }]`)
		assert.Error(t, err)
	})

	t.Run("빈 배열은 오류", func(t *testing.T) {
		_, err := selector.parseResponse(`[]`)
		assert.Error(t, err)
	})
}

func TestGPTCourseSelector_BuildPrompt(t *testing.T) {
	selector := &GPTCourseSelector{}

	candidates := []*model.CourseCombination{
		{
			TotalDistanceM: 1200,
			QualityScore:   0.82,
			Places: []*model.Place{
				{Name: "연남동 파스타", Category: model.CategoryRestaurant, SourceSequence: 1, Description: "수제 생면 파스타 전문점"},
				{Name: "연남 로스터리", Category: model.CategoryCafe, SourceSequence: 2},
			},
		},
	}
	userContext := &model.UserContext{
		Demographics: model.Demographics{Age: 27, MBTI: "INFP"},
		Preferences:  []string{"조용한 분위기"},
		Requirements: model.Requirements{BudgetRange: "5만원 이하", Transportation: "도보"},
	}

	prompt := selector.buildPrompt(candidates, userContext, model.WeatherRainy)

	assert.Contains(t, prompt, "비 오는 날")
	assert.Contains(t, prompt, "연남동 파스타")
	assert.Contains(t, prompt, "INFP")
	assert.Contains(t, prompt, "조용한 분위기")
	assert.Contains(t, prompt, "5만원 이하")
	assert.Contains(t, prompt, "selected_index")
	assert.Contains(t, prompt, "[0]")
}
