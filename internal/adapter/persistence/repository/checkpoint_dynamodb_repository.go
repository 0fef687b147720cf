package repository

import (
	"context"
	"errors"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCheckpointsTableName = "checkpoints"
	checkpointsRequestIDIndex   = "service_request_id-index"
)

type checkpointItem struct {
	ID               string `dynamodbav:"id"`
	ServiceRequestID string `dynamodbav:"service_request_id"`
	MechanicID       string `dynamodbav:"mechanic_id"`
	Description      string `dynamodbav:"description"`
	Approved         bool   `dynamodbav:"approved"`
	Final            bool   `dynamodbav:"final"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// CheckpointDynamoRepository persists Checkpoint entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_request_id-index (PK: service_request_id)

type CheckpointDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckpointRepository = (*CheckpointDynamoRepository)(nil)

func NewCheckpointDynamoRepository(ddb *dynamodb.Client) *CheckpointDynamoRepository {
	return &CheckpointDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKPOINTS_TABLE", defaultCheckpointsTableName),
	}
}

func (r *CheckpointDynamoRepository) Create(ctx context.Context, c entities.Checkpoint) (entities.Checkpoint, error) {
	av, err := attributevalue.MarshalMap(toCheckpointItem(c))
	if err != nil {
		return entities.Checkpoint{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Checkpoint{}, err
	}
	return c, nil
}

func (r *CheckpointDynamoRepository) GetByID(ctx context.Context, id string) (entities.Checkpoint, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Checkpoint{}, err
	}
	if len(out.Item) == 0 {
		return entities.Checkpoint{}, nil
	}

	var it checkpointItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Checkpoint{}, err
	}
	return fromCheckpointItem(it), nil
}

func (r *CheckpointDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Checkpoint, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checkpointsRequestIDIndex),
		KeyConditionExpression: aws.String("service_request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Checkpoint, 0, len(out.Items))
	for _, raw := range out.Items {
		var it checkpointItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCheckpointItem(it))
	}
	return items, nil
}

func (r *CheckpointDynamoRepository) SetApproval(ctx context.Context, id string, approved bool) (entities.Checkpoint, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #approved = :approved, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#approved":   "approved",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved":   &types.AttributeValueMemberBOOL{Value: approved},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Checkpoint{}, nil
		}
		return entities.Checkpoint{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Checkpoint{}, nil
	}

	var it checkpointItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Checkpoint{}, err
	}
	return fromCheckpointItem(it), nil
}

func toCheckpointItem(c entities.Checkpoint) checkpointItem {
	return checkpointItem{
		ID:               c.ID,
		ServiceRequestID: c.ServiceRequestID,
		MechanicID:       c.MechanicID,
		Description:      c.Description,
		Approved:         c.Approved,
		Final:            c.Final,
		CreatedAt:        timeToString(c.CreatedAt),
		UpdatedAt:        timeToString(c.UpdatedAt),
	}
}

func fromCheckpointItem(it checkpointItem) entities.Checkpoint {
	return entities.Checkpoint{
		ID:               it.ID,
		ServiceRequestID: it.ServiceRequestID,
		MechanicID:       it.MechanicID,
		Description:      it.Description,
		Approved:         it.Approved,
		Final:            it.Final,
		CreatedAt:        stringToTime(it.CreatedAt),
		UpdatedAt:        stringToTime(it.UpdatedAt),
	}
}
