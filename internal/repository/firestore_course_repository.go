package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"

	"DateCourse-App/internal/domain/model"
	"DateCourse-App/internal/domain/repository"
)

const recommendationCollection = "courseRecommendations"

// FirestoreCourseRepository Firestore 를 사용하는 추천 결과 저장소.
// expireAt 필드에 TTL 정책을 걸어 만료된 문서는 자동 삭제된다.
type FirestoreCourseRepository struct {
	client *firestore.Client
}

// NewFirestoreCourseRepository 새로운 FirestoreCourseRepository 인스턴스를 생성
func NewFirestoreCourseRepository(client *firestore.Client) repository.CourseStoreRepository {
	return &FirestoreCourseRepository{
		client: client,
	}
}

// SaveRecommendation 추천 결과를 request_id 문서로 저장
func (r *FirestoreCourseRepository) SaveRecommendation(ctx context.Context, response *model.RecommendResponse, ttlHours int) error {
	if response == nil || response.RequestID == "" {
		return errors.New("저장할 추천 결과가 올바르지 않습니다")
	}

	firestoreData := response.ToFirestoreRecommendation(ttlHours)

	_, err := r.client.Collection(recommendationCollection).Doc(response.RequestID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ 추천 결과 저장 실패: %s: %v", response.RequestID, err)
		return fmt.Errorf("추천 결과 저장 실패: %w", err)
	}

	log.Printf("✅ 추천 결과 저장 완료: %s (TTL %d시간)", response.RequestID, ttlHours)
	return nil
}

// GetRecommendation request_id 로 추천 결과를 조회
func (r *FirestoreCourseRepository) GetRecommendation(ctx context.Context, requestID string) (*model.RecommendResponse, error) {
	doc, err := r.client.Collection(recommendationCollection).Doc(requestID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("%w: %s", model.ErrRecommendationNotFound, requestID)
		}
		return nil, fmt.Errorf("추천 결과 조회 실패: %w", err)
	}

	var firestoreData model.FirestoreRecommendation
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("추천 결과 변환 실패: %w", err)
	}

	log.Printf("✅ 추천 결과 조회 완료: %s", requestID)
	return firestoreData.ToRecommendResponse(), nil
}
