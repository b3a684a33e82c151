package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/campus-books-server/internal/domain"
)

// GraduateRepo reads the graduates catalog. PK: graduate_id
type GraduateRepo struct {
	client    API
	tableName string
}

func NewGraduateRepo(client API, tableName string) *GraduateRepo {
	return &GraduateRepo{client: client, tableName: tableName}
}

func (r *GraduateRepo) Scan(ctx context.Context) ([]domain.Graduate, error) {
	return scanAll[domain.Graduate](ctx, r.client, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *GraduateRepo) PutMany(ctx context.Context, graduates []domain.Graduate) error {
	return batchPut(ctx, r.client, r.tableName, graduates)
}

// ResearchRepo reads the research catalog. PK: research_id
type ResearchRepo struct {
	client    API
	tableName string
}

func NewResearchRepo(client API, tableName string) *ResearchRepo {
	return &ResearchRepo{client: client, tableName: tableName}
}

func (r *ResearchRepo) Scan(ctx context.Context) ([]domain.Research, error) {
	return scanAll[domain.Research](ctx, r.client, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *ResearchRepo) PutMany(ctx context.Context, research []domain.Research) error {
	return batchPut(ctx, r.client, r.tableName, research)
}
