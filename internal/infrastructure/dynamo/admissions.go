package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/campus-books-server/internal/domain"
)

// AdmissionRepo manages student applications.
// PK: student_email, SK: college_id
type AdmissionRepo struct {
	client    API
	tableName string
}

func NewAdmissionRepo(client API, tableName string) *AdmissionRepo {
	return &AdmissionRepo{client: client, tableName: tableName}
}

// Create inserts a, failing with ErrConflict when the student already applied
// to the same college.
func (r *AdmissionRepo) Create(ctx context.Context, a *domain.Admission) error {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("marshal admission: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{"#sk": fieldCollegeID},
	})
	if isConditionFailed(err) {
		return fmt.Errorf("admission already submitted for this college: %w", domain.ErrConflict)
	}
	return err
}

func (r *AdmissionRepo) ListByStudent(ctx context.Context, email string) ([]domain.Admission, error) {
	return queryAll[domain.Admission](ctx, r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("#pk = :e"),
		ExpressionAttributeNames:  map[string]string{"#pk": fieldStudentEmail},
		ExpressionAttributeValues: map[string]types.AttributeValue{":e": &types.AttributeValueMemberS{Value: email}},
	})
}

// MarkReviewed sets reviewed=true on the (email, collegeID) admission. It
// reports false, without error, when no such admission exists.
func (r *AdmissionRepo) MarkReviewed(ctx context.Context, email, collegeID string) (bool, error) {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 compositeKey(fieldStudentEmail, email, fieldCollegeID, collegeID),
		UpdateExpression:    aws.String("SET #rv = :t"),
		ConditionExpression: aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#rv": fieldReviewed,
			"#pk": fieldStudentEmail,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if isConditionFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
