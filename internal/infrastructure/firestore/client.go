package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

type FirestoreClient struct {
	client *firestore.Client
}

func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	var client *firestore.Client
	var err error

	// Cloud Run 환경 감지
	isCloudRun := os.Getenv("K_SERVICE") != "" || os.Getenv("PORT") != ""

	if isCloudRun {
		// Cloud Run 환경에서는 기본 인증 사용
		log.Printf("☁️ Cloud Run 환경: 기본 인증 사용")
		client, err = firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("기본 인증으로 Firestore 클라이언트 생성 실패: %w", err)
		}
		log.Printf("✅ Firestore 클라이언트 초기화 완료: %s (Cloud Run 기본 인증)", projectID)
	} else {
		// 로컬 환경에서는 환경변수 또는 파일로 인증
		credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

		if credentialsFile == "" {
			credentialsFile = "datecourse-firestore-key.json"
		}

		if _, fileErr := os.Stat(credentialsFile); fileErr != nil {
			log.Printf("⚠️ 인증 파일을 찾을 수 없음: %s, 기본 인증으로 시도", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID)
		} else {
			log.Printf("📄 인증 파일 사용: %s", credentialsFile)
			option := option.WithCredentialsFile(credentialsFile)
			client, err = firestore.NewClient(ctx, projectID, option)
		}

		if err != nil {
			return nil, fmt.Errorf("Firestore 클라이언트 생성 실패: %w", err)
		}
		log.Printf("✅ Firestore 클라이언트 초기화 완료: %s", projectID)
	}

	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
