package dynamo

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/campus-books-server/internal/domain"
)

// CollegeRepo provides typed DynamoDB operations for the colleges table.
// PK: college_id. Reviews live in the embedded "reviews" list.
type CollegeRepo struct {
	client    API
	tableName string
}

func NewCollegeRepo(client API, tableName string) *CollegeRepo {
	return &CollegeRepo{client: client, tableName: tableName}
}

// PutMany writes colleges in batches, deriving name_lower for search.
func (r *CollegeRepo) PutMany(ctx context.Context, colleges []domain.College) error {
	for i := range colleges {
		colleges[i].NameLower = strings.ToLower(colleges[i].Name)
	}
	return batchPut(ctx, r.client, r.tableName, colleges)
}

func (r *CollegeRepo) Get(ctx context.Context, collegeID string) (*domain.College, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey(fieldCollegeID, collegeID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("college not found: %w", domain.ErrNotFound)
	}
	var c domain.College
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Scan returns every college in table order (callers sort).
func (r *CollegeRepo) Scan(ctx context.Context) ([]domain.College, error) {
	return scanAll[domain.College](ctx, r.client, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

// SearchByName returns colleges whose lower-cased name contains needle.
// needle must already be lower-cased; an empty needle matches everything.
func (r *CollegeRepo) SearchByName(ctx context.Context, needle string) ([]domain.College, error) {
	if needle == "" {
		return r.Scan(ctx)
	}
	return scanAll[domain.College](ctx, r.client, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("contains(#n, :q)"),
		ExpressionAttributeNames:  map[string]string{"#n": fieldNameLower},
		ExpressionAttributeValues: map[string]types.AttributeValue{":q": &types.AttributeValueMemberS{Value: needle}},
	})
}

func (r *CollegeRepo) Count(ctx context.Context) (int, error) {
	return countAll(ctx, r.client, r.tableName)
}

// AppendReview appends rv to the college's review list in a single atomic
// update and returns the college as stored afterwards.
func (r *CollegeRepo) AppendReview(ctx context.Context, collegeID string, rv domain.Review) (*domain.College, error) {
	av, err := attributevalue.Marshal([]domain.Review{rv})
	if err != nil {
		return nil, fmt.Errorf("marshal review: %w", err)
	}
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey(fieldCollegeID, collegeID),
		UpdateExpression:    aws.String("SET #r = list_append(if_not_exists(#r, :empty), :rv)"),
		ConditionExpression: aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#r":  fieldReviews,
			"#pk": fieldCollegeID,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rv":    av,
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return nil, fmt.Errorf("college not found: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var c domain.College
	if err := attributevalue.UnmarshalMap(out.Attributes, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
