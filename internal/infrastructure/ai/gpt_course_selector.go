package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"

	"DateCourse-App/internal/domain/model"
	"DateCourse-App/internal/domain/repository"
)

// GPTCourseSelector OpenAI 챗 컴플리션을 사용하는 CourseSelectionProvider 구현.
// 후보 조합을 프롬프트로 제시하고 최대 3개의 선택(인덱스/제목/이유)을 JSON 으로 받는다.
type GPTCourseSelector struct {
	client *openai.Client
	model  string
}

// NewGPTCourseSelector 새로운 GPTCourseSelector 인스턴스를 생성
func NewGPTCourseSelector(apiKey string, chatModel string) repository.CourseSelectionProvider {
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	return &GPTCourseSelector{
		client: openai.NewClient(apiKey),
		model:  chatModel,
	}
}

// SelectCourses 후보 조합 중 최대 3개를 선택
func (s *GPTCourseSelector) SelectCourses(ctx context.Context, candidates []*model.CourseCombination, userContext *model.UserContext, weather string) ([]model.CourseSelection, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: 선택할 후보가 없습니다", model.ErrOracleUnavailable)
	}

	prompt := s.buildPrompt(candidates, userContext, weather)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "당신은 한국의 데이트 코스 추천 전문가입니다. 반드시 JSON 배열만 응답하세요.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GPT 호출 실패: %v", model.ErrOracleUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: GPT 응답이 비어 있습니다", model.ErrOracleUnavailable)
	}

	selections, err := s.parseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("⚠️ GPT 응답 파싱 실패: %v", err)
		return nil, fmt.Errorf("%w: %v", model.ErrOracleUnavailable, err)
	}

	return selections, nil
}

// buildPrompt 후보 조합과 사용자 컨텍스트를 담은 프롬프트를 구성
func (s *GPTCourseSelector) buildPrompt(candidates []*model.CourseCombination, userContext *model.UserContext, weather string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("오늘 날씨는 '%s'입니다. 아래 데이트 코스 후보 중 가장 좋은 코스를 최대 3개 골라주세요.\n\n", weatherLabel(weather)))

	if userContext != nil {
		sb.WriteString("## 사용자 정보\n")
		if userContext.Demographics.Age > 0 {
			sb.WriteString(fmt.Sprintf("- 나이: %d세\n", userContext.Demographics.Age))
		}
		if userContext.Demographics.MBTI != "" {
			sb.WriteString(fmt.Sprintf("- MBTI: %s\n", userContext.Demographics.MBTI))
		}
		if userContext.Demographics.RelationshipStage != "" {
			sb.WriteString(fmt.Sprintf("- 연애 단계: %s\n", userContext.Demographics.RelationshipStage))
		}
		if len(userContext.Preferences) > 0 {
			sb.WriteString(fmt.Sprintf("- 취향: %s\n", strings.Join(userContext.Preferences, ", ")))
		}
		if userContext.Requirements.BudgetRange != "" {
			sb.WriteString(fmt.Sprintf("- 예산: %s\n", userContext.Requirements.BudgetRange))
		}
		if userContext.Requirements.TimePreference != "" {
			sb.WriteString(fmt.Sprintf("- 시간대: %s\n", userContext.Requirements.TimePreference))
		}
		if userContext.Requirements.Transportation != "" {
			sb.WriteString(fmt.Sprintf("- 이동 수단: %s\n", userContext.Requirements.Transportation))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## 코스 후보\n")
	for i, combination := range candidates {
		sb.WriteString(fmt.Sprintf("[%d] 총 이동거리 %.0fm, 품질 점수 %.2f\n", i, combination.TotalDistanceM, combination.QualityScore))
		for _, place := range combination.Places {
			sb.WriteString(fmt.Sprintf("  %d. %s (%s)", place.SourceSequence, place.Name, place.Category))
			if place.Description != "" {
				description := place.Description
				if len([]rune(description)) > 60 {
					description = string([]rune(description)[:60]) + "..."
				}
				sb.WriteString(" - " + description)
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(`
## 응답 형식
다음 형식의 JSON 배열만 응답하세요 (최대 3개):
[{"selected_index": 0, "title": "코스 제목", "reason": "추천 이유"}]
selected_index 는 위 후보의 번호입니다.`)

	return sb.String()
}

// parseResponse GPT 응답에서 JSON 배열을 추출해 파싱
func (s *GPTCourseSelector) parseResponse(content string) ([]model.CourseSelection, error) {
	cleaned := strings.TrimSpace(content)
	// 마크다운 코드 블록 제거
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	// 앞뒤 잡설이 붙은 경우 배열 구간만 잘라낸다
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("응답에서 JSON 배열을 찾지 못했습니다")
	}
	cleaned = cleaned[start : end+1]

	var selections []model.CourseSelection
	if err := json.Unmarshal([]byte(cleaned), &selections); err != nil {
		return nil, fmt.Errorf("JSON 파싱 실패: %v", err)
	}
	if len(selections) == 0 {
		return nil, fmt.Errorf("선택 결과가 비어 있습니다")
	}
	if len(selections) > 3 {
		selections = selections[:3]
	}

	return selections, nil
}

func weatherLabel(weather string) string {
	if weather == model.WeatherRainy {
		return "비 오는 날"
	}
	return "맑은 날"
}
