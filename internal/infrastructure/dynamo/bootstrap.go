package dynamo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/campus-books-server/internal/config"
)

// Bootstrap creates all DynamoDB tables if they don't already exist.
// Tables that already exist are left alone.
func Bootstrap(ctx context.Context, client *dynamodb.Client, tables config.DynamoTables) {
	createTable(ctx, client, hashTable(tables.Users, fieldEmail))
	createTable(ctx, client, hashTable(tables.Colleges, fieldCollegeID))
	createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Admissions),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(fieldStudentEmail), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(fieldCollegeID), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(fieldStudentEmail), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String(fieldCollegeID), KeyType: types.KeyTypeRange},
		},
	})
	createTable(ctx, client, hashTable(tables.Graduates, fieldGraduateID))
	createTable(ctx, client, hashTable(tables.Research, fieldResearchID))
}

// hashTable describes an on-demand table keyed by a single string attribute.
func hashTable(name, hashKey string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(hashKey), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(hashKey), KeyType: types.KeyTypeHash},
		},
	}
}

func createTable(ctx context.Context, client *dynamodb.Client, input *dynamodb.CreateTableInput) {
	_, err := client.CreateTable(ctx, input)
	if err != nil {
		// ResourceInUseException: the table already exists.
		var riue *types.ResourceInUseException
		if !errors.As(err, &riue) {
			slog.Warn("could not create table", "table", *input.TableName, "err", err)
		}
	} else {
		slog.Info("created table", "table", *input.TableName)
	}
}
