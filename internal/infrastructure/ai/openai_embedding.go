package ai

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sashabaranov/go-openai"

	"DateCourse-App/internal/domain/model"
	"DateCourse-App/internal/domain/repository"
)

// 임베딩 호출 파라미터
const (
	embeddingBatchSize     = 16 // 한 API 호출에 넣는 최대 텍스트 수
	embeddingMaxConcurrent = 4  // 동시 API 호출 상한
)

// OpenAIEmbeddingService OpenAI 임베딩 API 를 사용하는 EmbeddingService 구현.
// 큰 입력은 청크로 나누고 세마포어로 동시 호출 수를 제한한다.
type OpenAIEmbeddingService struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIEmbeddingService 새로운 OpenAIEmbeddingService 인스턴스를 생성
func NewOpenAIEmbeddingService(apiKey string, embeddingModel string) repository.EmbeddingService {
	if embeddingModel == "" {
		embeddingModel = string(openai.SmallEmbedding3)
	}
	return &OpenAIEmbeddingService{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(embeddingModel),
	}
}

// Embed 단일 텍스트의 벡터를 생성
func (s *OpenAIEmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := s.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("%w: 빈 임베딩 응답", model.ErrRetrieval)
	}
	return vectors[0], nil
}

// EmbedBatch 여러 텍스트의 벡터를 일괄 생성한다 (입력 순서 보존).
// API 실패는 이 계층에서 숨기지 않고 호출자에게 전파한다.
func (s *OpenAIEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, errors.New("임베딩할 텍스트가 없습니다")
	}

	type chunkResult struct {
		offset  int
		vectors [][]float32
		err     error
	}

	// 청크 분할
	var chunks [][]string
	var offsets []int
	for start := 0; start < len(texts); start += embeddingBatchSize {
		end := start + embeddingBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		chunks = append(chunks, texts[start:end])
		offsets = append(offsets, start)
	}

	// 세마포어로 동시 호출 수를 제한하며 청크를 병렬 처리
	semaphore := make(chan struct{}, embeddingMaxConcurrent)
	results := make(chan chunkResult, len(chunks))
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		wg.Add(1)
		go func(offset int, batch []string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			vectors, err := s.embedChunk(ctx, batch)
			results <- chunkResult{offset: offset, vectors: vectors, err: err}
		}(offsets[i], chunk)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	output := make([][]float32, len(texts))
	for result := range results {
		if result.err != nil {
			return nil, result.err
		}
		for j, vector := range result.vectors {
			output[result.offset+j] = vector
		}
	}

	return output, nil
}

// embedChunk 한 청크에 대한 실제 API 호출
func (s *OpenAIEmbeddingService) embedChunk(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: s.model,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: 임베딩 API 호출 실패: %v", model.ErrRetrieval, err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("%w: 임베딩 응답 수 불일치 (요청 %d, 응답 %d)", model.ErrRetrieval, len(texts), len(resp.Data))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		vectors[i] = data.Embedding
	}
	return vectors, nil
}
