package repository

import "context"

// EmbeddingService 텍스트 임베딩 서비스의 계약
// 외부 API 실패는 호출자가 처리해야 하며 이 계층에서 숨기지 않는다
type EmbeddingService interface {
	// Embed 단일 텍스트의 벡터를 생성
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch 여러 텍스트의 벡터를 일괄 생성 (입력 순서 보존)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
