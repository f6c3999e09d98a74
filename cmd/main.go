package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	domainRepo "DateCourse-App/internal/domain/repository"
	"DateCourse-App/internal/domain/service"
	"DateCourse-App/internal/handler"
	"DateCourse-App/internal/infrastructure/ai"
	"DateCourse-App/internal/infrastructure/database"
	"DateCourse-App/internal/infrastructure/firestore"
	"DateCourse-App/internal/infrastructure/maps"
	"DateCourse-App/internal/repository"
	"DateCourse-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env 파일을 찾을 수 없어 시스템 환경변수를 사용합니다")
	}

	openAIAPIKey := os.Getenv("OPENAI_API_KEY")
	kakaoAPIKey := os.Getenv("KAKAO_REST_API_KEY")
	firestoreProjectID := os.Getenv("FIRESTORE_PROJECT_ID")

	if openAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY 환경변수가 설정되지 않았습니다")
	}
	if kakaoAPIKey == "" {
		log.Fatal("KAKAO_REST_API_KEY 환경변수가 설정되지 않았습니다")
	}
	if firestoreProjectID == "" {
		log.Fatal("FIRESTORE_PROJECT_ID 환경변수가 설정되지 않았습니다")
	}

	// 장소 검색 저장소: PostgreSQL 직접 연결을 우선하고, 불가하면 Supabase RPC 로 폴백
	placeRepo, dbCloser, err := buildPlaceRepository()
	if err != nil {
		log.Fatalf("장소 저장소 초기화 실패: %v", err)
	}
	if dbCloser != nil {
		defer dbCloser()
	}

	ctx := context.Background()
	firestoreClient, err := firestore.NewFirestoreClient(ctx, firestoreProjectID)
	if err != nil {
		log.Fatalf("Firestore 초기화 실패: %v", err)
	}
	defer firestoreClient.Close()

	// AI 클라이언트
	embedder := ai.NewOpenAIEmbeddingService(openAIAPIKey, os.Getenv("OPENAI_EMBEDDING_MODEL"))
	courseSelector := ai.NewGPTCourseSelector(openAIAPIKey, os.Getenv("OPENAI_CHAT_MODEL"))
	areaProvider := maps.NewKakaoAreaProvider(kakaoAPIKey)

	// 의존성 주입
	scenarioService := service.NewWeatherScenarioService(embedder, placeRepo, courseSelector)
	courseStore := repository.NewFirestoreCourseRepository(firestoreClient.GetClient())
	recommendUseCase := usecase.NewCourseRecommendUseCase(scenarioService, courseStore)
	recommendHandler := handler.NewCourseRecommendHandler(recommendUseCase, areaProvider)

	// Gin 라우터 설정
	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "DateCourse-App"})
	})

	courses := r.Group("/api/v1/courses")
	{
		courses.POST("/recommend", recommendHandler.PostRecommend)
		courses.GET("/recommendations/:id", recommendHandler.GetRecommendation)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("DateCourse-App server starting on :%s...\n", port)
	log.Fatal(r.Run(":" + port))
}

// buildPlaceRepository 환경변수에 따라 장소 검색 저장소 구현을 선택
func buildPlaceRepository() (domainRepo.PlaceSearchRepository, func() error, error) {
	if os.Getenv("DATABASE_URL") != "" || os.Getenv("SUPABASE_DB_PASSWORD") != "" {
		fmt.Println("Initializing PostgreSQL client...")
		postgresClient, err := database.NewPostgreSQLClient()
		if err != nil {
			return nil, nil, fmt.Errorf("PostgreSQL 초기화 실패: %w", err)
		}
		fmt.Println("✅ PostgreSQL connection successful!")
		return repository.NewPostgresPlacesRepository(postgresClient), postgresClient.Close, nil
	}

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		return nil, nil, fmt.Errorf("Supabase 초기화 실패: %w", err)
	}
	if err := supabaseClient.HealthCheck(); err != nil {
		return nil, nil, fmt.Errorf("Supabase 헬스체크 실패: %w", err)
	}
	fmt.Println("✅ Supabase connection successful!")
	return repository.NewSupabasePlacesRepository(supabaseClient), nil, nil
}
