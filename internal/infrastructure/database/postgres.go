package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// PostgreSQLClient PostgreSQL 직접 연결 클라이언트 (pgvector 확장 사용)
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient 새로운 PostgreSQL 클라이언트를 생성
func NewPostgreSQLClient() (*PostgreSQLClient, error) {
	// DATABASE_URL 이 있으면 그대로 사용
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return newClientFromConnString(databaseURL)
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabasePassword := os.Getenv("SUPABASE_DB_PASSWORD")

	if supabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL 또는 SUPABASE_URL 환경변수가 설정되지 않았습니다")
	}
	if supabasePassword == "" {
		return nil, fmt.Errorf("SUPABASE_DB_PASSWORD 환경변수가 설정되지 않았습니다")
	}

	// Supabase URL 에서 호스트명 추출 (https://xxx.supabase.co -> xxx.supabase.co)
	host := supabaseURL[8:] // "https://" 제거

	// Supabase PostgreSQL 연결 문자열 구성 (풀러 포트 6543 사용)
	connStr := fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, supabasePassword,
	)

	return newClientFromConnString(connStr)
}

func newClientFromConnString(connStr string) (*PostgreSQLClient, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL 연결 초기화 실패: %w", err)
	}

	// 연결 테스트
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("PostgreSQL 연결 실패: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// Close 데이터베이스 연결을 닫는다
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck 데이터베이스 연결 헬스체크
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQL 클라이언트가 초기화되지 않았습니다")
	}
	return pc.DB.Ping()
}
