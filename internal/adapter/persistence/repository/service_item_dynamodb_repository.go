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
	defaultOngoingItemsTableName    = "ongoing_items"
	defaultAdditionalItemsTableName = "additional_items"
	itemsCheckpointIDIndex          = "checkpoint_id-index"
)

type ongoingItemItem struct {
	ID               string `dynamodbav:"id"`
	CheckpointID     string `dynamodbav:"checkpoint_id"`
	CatalogServiceID string `dynamodbav:"catalog_service_id"`
	Name             string `dynamodbav:"name"`
	PriceSnapshot    string `dynamodbav:"price_snapshot"`
	ExpectedDate     string `dynamodbav:"expected_date"`
	Finished         bool   `dynamodbav:"finished"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

type additionalItemItem struct {
	ID               string `dynamodbav:"id"`
	CheckpointID     string `dynamodbav:"checkpoint_id"`
	CatalogServiceID string `dynamodbav:"catalog_service_id"`
	Name             string `dynamodbav:"name"`
	PriceSnapshot    string `dynamodbav:"price_snapshot"`
	Approved         bool   `dynamodbav:"approved"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ServiceItemDynamoRepository persists the two billable item kinds, one table
// each.
//
// Table requirements (both tables):
//   - PK: id (string)
//   - GSI: checkpoint_id-index (PK: checkpoint_id)

type ServiceItemDynamoRepository struct {
	ddb             *dynamodb.Client
	ongoingTable    string
	additionalTable string
}

var _ interfaces.IServiceItemRepository = (*ServiceItemDynamoRepository)(nil)

func NewServiceItemDynamoRepository(ddb *dynamodb.Client) *ServiceItemDynamoRepository {
	return &ServiceItemDynamoRepository{
		ddb:             ddb,
		ongoingTable:    getenvDefault("ONGOING_ITEMS_TABLE", defaultOngoingItemsTableName),
		additionalTable: getenvDefault("ADDITIONAL_ITEMS_TABLE", defaultAdditionalItemsTableName),
	}
}

func (r *ServiceItemDynamoRepository) CreateOngoing(ctx context.Context, it entities.OngoingItem) (entities.OngoingItem, error) {
	av, err := attributevalue.MarshalMap(toOngoingItemItem(it))
	if err != nil {
		return entities.OngoingItem{}, err
	}
	if err := r.put(ctx, r.ongoingTable, av); err != nil {
		return entities.OngoingItem{}, err
	}
	return it, nil
}

func (r *ServiceItemDynamoRepository) GetOngoingByID(ctx context.Context, id string) (entities.OngoingItem, error) {
	raw, err := r.get(ctx, r.ongoingTable, id)
	if err != nil || raw == nil {
		return entities.OngoingItem{}, err
	}

	var it ongoingItemItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.OngoingItem{}, err
	}
	return fromOngoingItemItem(it), nil
}

func (r *ServiceItemDynamoRepository) ListOngoingByCheckpointID(ctx context.Context, checkpointID string) ([]entities.OngoingItem, error) {
	raws, err := r.queryByCheckpoint(ctx, r.ongoingTable, checkpointID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.OngoingItem, 0, len(raws))
	for _, raw := range raws {
		var it ongoingItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOngoingItemItem(it))
	}
	return items, nil
}

// FinishOngoing flips finished to true, conditioned on the flag still being
// false so the flip stays monotonic under races.
func (r *ServiceItemDynamoRepository) FinishOngoing(ctx context.Context, id string) (entities.OngoingItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.ongoingTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #finished = :false"),
		UpdateExpression:    aws.String("SET #finished = :true, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#finished":   "finished",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.OngoingItem{}, nil
		}
		return entities.OngoingItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.OngoingItem{}, nil
	}

	var it ongoingItemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.OngoingItem{}, err
	}
	return fromOngoingItemItem(it), nil
}

func (r *ServiceItemDynamoRepository) CreateAdditional(ctx context.Context, it entities.AdditionalItem) (entities.AdditionalItem, error) {
	av, err := attributevalue.MarshalMap(toAdditionalItemItem(it))
	if err != nil {
		return entities.AdditionalItem{}, err
	}
	if err := r.put(ctx, r.additionalTable, av); err != nil {
		return entities.AdditionalItem{}, err
	}
	return it, nil
}

func (r *ServiceItemDynamoRepository) GetAdditionalByID(ctx context.Context, id string) (entities.AdditionalItem, error) {
	raw, err := r.get(ctx, r.additionalTable, id)
	if err != nil || raw == nil {
		return entities.AdditionalItem{}, err
	}

	var it additionalItemItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.AdditionalItem{}, err
	}
	return fromAdditionalItemItem(it), nil
}

func (r *ServiceItemDynamoRepository) ListAdditionalByCheckpointID(ctx context.Context, checkpointID string) ([]entities.AdditionalItem, error) {
	raws, err := r.queryByCheckpoint(ctx, r.additionalTable, checkpointID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.AdditionalItem, 0, len(raws))
	for _, raw := range raws {
		var it additionalItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAdditionalItemItem(it))
	}
	return items, nil
}

func (r *ServiceItemDynamoRepository) SetAdditionalApproval(ctx context.Context, id string, approved bool) (entities.AdditionalItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.additionalTable),
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
			return entities.AdditionalItem{}, nil
		}
		return entities.AdditionalItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.AdditionalItem{}, nil
	}

	var it additionalItemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AdditionalItem{}, err
	}
	return fromAdditionalItemItem(it), nil
}

func (r *ServiceItemDynamoRepository) DeleteAdditional(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.additionalTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ServiceItemDynamoRepository) put(ctx context.Context, table string, av map[string]types.AttributeValue) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *ServiceItemDynamoRepository) get(ctx context.Context, table, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func (r *ServiceItemDynamoRepository) queryByCheckpoint(ctx context.Context, table, checkpointID string) ([]map[string]types.AttributeValue, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(itemsCheckpointIDIndex),
		KeyConditionExpression: aws.String("checkpoint_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: checkpointID},
		},
	})
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

func toOngoingItemItem(it entities.OngoingItem) ongoingItemItem {
	return ongoingItemItem{
		ID:               it.ID,
		CheckpointID:     it.CheckpointID,
		CatalogServiceID: it.CatalogServiceID,
		Name:             it.Name,
		PriceSnapshot:    floatToString(it.PriceSnapshot),
		ExpectedDate:     timeToString(it.ExpectedDate),
		Finished:         it.Finished,
		CreatedAt:        timeToString(it.CreatedAt),
		UpdatedAt:        timeToString(it.UpdatedAt),
	}
}

func fromOngoingItemItem(it ongoingItemItem) entities.OngoingItem {
	return entities.OngoingItem{
		ID:               it.ID,
		CheckpointID:     it.CheckpointID,
		CatalogServiceID: it.CatalogServiceID,
		Name:             it.Name,
		PriceSnapshot:    stringToFloat(it.PriceSnapshot),
		ExpectedDate:     stringToTime(it.ExpectedDate),
		Finished:         it.Finished,
		CreatedAt:        stringToTime(it.CreatedAt),
		UpdatedAt:        stringToTime(it.UpdatedAt),
	}
}

func toAdditionalItemItem(it entities.AdditionalItem) additionalItemItem {
	return additionalItemItem{
		ID:               it.ID,
		CheckpointID:     it.CheckpointID,
		CatalogServiceID: it.CatalogServiceID,
		Name:             it.Name,
		PriceSnapshot:    floatToString(it.PriceSnapshot),
		Approved:         it.Approved,
		CreatedAt:        timeToString(it.CreatedAt),
		UpdatedAt:        timeToString(it.UpdatedAt),
	}
}

func fromAdditionalItemItem(it additionalItemItem) entities.AdditionalItem {
	return entities.AdditionalItem{
		ID:               it.ID,
		CheckpointID:     it.CheckpointID,
		CatalogServiceID: it.CatalogServiceID,
		Name:             it.Name,
		PriceSnapshot:    stringToFloat(it.PriceSnapshot),
		Approved:         it.Approved,
		CreatedAt:        stringToTime(it.CreatedAt),
		UpdatedAt:        stringToTime(it.UpdatedAt),
	}
}
