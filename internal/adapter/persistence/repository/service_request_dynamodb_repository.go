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
	defaultServiceRequestsTableName = "service_requests"
	serviceRequestsVehicleIDIndex   = "vehicle_id-index"
)

type serviceRequestItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	GarageID   string `dynamodbav:"garage_id"`
	VehicleID  string `dynamodbav:"vehicle_id"`
	MechanicID string `dynamodbav:"mechanic_id,omitempty"`
	Status     string `dynamodbav:"status"`
	Latitude   string `dynamodbav:"latitude"`
	Longitude  string `dynamodbav:"longitude"`
	FinalTotal string `dynamodbav:"final_total,omitempty"`
	Version    int64  `dynamodbav:"version"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vehicle_id-index (PK: vehicle_id)
//
// Every status write is conditioned on the stored version, so two writers
// racing on the same request serialize: the loser's condition fails and the
// zero value is returned. Completion goes through TransactWriteItems so the
// final checkpoint and the status flip commit together or not at all.

type ServiceRequestDynamoRepository struct {
	ddb                  *dynamodb.Client
	tableName            string
	checkpointsTableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:                  ddb,
		tableName:            getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
		checkpointsTableName: getenvDefault("CHECKPOINTS_TABLE", defaultCheckpointsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	it := toServiceRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceRequest{}, err
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
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) FindOpenByVehicleID(ctx context.Context, vehicleID string) (entities.ServiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceRequestsVehicleIDIndex),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		FilterExpression:       aws.String("#status IN (:pending, :accepted, :in_progress)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid":         &types.AttributeValueMemberS{Value: vehicleID},
			":pending":     &types.AttributeValueMemberS{Value: string(entities.RequestStatusPending)},
			":accepted":    &types.AttributeValueMemberS{Value: string(entities.RequestStatusAccepted)},
			":in_progress": &types.AttributeValueMemberS{Value: string(entities.RequestStatusInProgress)},
		},
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, expectedVersion int64, status entities.RequestStatus, mechanicID string, clearMechanic bool) (entities.ServiceRequest, error) {
	now := nowString()

	expr := "SET #status = :status, #version = :new_version, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#version":    "version",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status":      &types.AttributeValueMemberS{Value: string(status)},
		":version":     &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
		":new_version": &types.AttributeValueMemberN{Value: int64ToString(expectedVersion + 1)},
		":updated_at":  &types.AttributeValueMemberS{Value: now},
	}
	switch {
	case mechanicID != "":
		expr += ", #mechanic_id = :mechanic_id"
		names["#mechanic_id"] = "mechanic_id"
		values[":mechanic_id"] = &types.AttributeValueMemberS{Value: mechanicID}
	case clearMechanic:
		// mechanic_id must be present iff the request is (or was last)
		// assigned; cancellation drops the attribute.
		expr += " REMOVE #mechanic_id"
		names["#mechanic_id"] = "mechanic_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :version"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

// Complete writes the final checkpoint and flips the request to COMPLETED in
// a single transaction conditioned on the expected version. TransactWriteItems
// returns no attributes, so the finalized request is re-read afterwards.
func (r *ServiceRequestDynamoRepository) Complete(ctx context.Context, w interfaces.CompletionWrite) (entities.ServiceRequest, error) {
	cpAv, err := attributevalue.MarshalMap(toCheckpointItem(w.FinalCheckpoint))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	now := nowString()
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.checkpointsTableName),
					Item:                cpAv,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: w.RequestID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #version = :version"),
					UpdateExpression:    aws.String("SET #status = :status, #final_total = :final_total, #version = :new_version, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":          "id",
						"#status":      "status",
						"#final_total": "final_total",
						"#version":     "version",
						"#updated_at":  "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":status":      &types.AttributeValueMemberS{Value: string(entities.RequestStatusCompleted)},
						":final_total": &types.AttributeValueMemberS{Value: floatToString(w.FinalTotal)},
						":version":     &types.AttributeValueMemberN{Value: int64ToString(w.ExpectedVersion)},
						":new_version": &types.AttributeValueMemberN{Value: int64ToString(w.ExpectedVersion + 1)},
						":updated_at":  &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.ServiceRequest{}, nil
				}
			}
		}
		return entities.ServiceRequest{}, err
	}

	return r.GetByID(ctx, w.RequestID)
}

func toServiceRequestItem(req entities.ServiceRequest) serviceRequestItem {
	it := serviceRequestItem{
		ID:         req.ID,
		CustomerID: req.CustomerID,
		GarageID:   req.GarageID,
		VehicleID:  req.VehicleID,
		MechanicID: req.MechanicID,
		Status:     string(req.Status),
		Latitude:   floatToString(req.Coordinates.Latitude),
		Longitude:  floatToString(req.Coordinates.Longitude),
		Version:    req.Version,
		CreatedAt:  timeToString(req.CreatedAt),
		UpdatedAt:  timeToString(req.UpdatedAt),
	}
	if req.FinalTotal != 0 {
		it.FinalTotal = floatToString(req.FinalTotal)
	}
	return it
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		GarageID:   it.GarageID,
		VehicleID:  it.VehicleID,
		MechanicID: it.MechanicID,
		Status:     entities.RequestStatus(it.Status),
		Coordinates: entities.Coordinates{
			Latitude:  stringToFloat(it.Latitude),
			Longitude: stringToFloat(it.Longitude),
		},
		FinalTotal: stringToFloat(it.FinalTotal),
		Version:    it.Version,
		CreatedAt:  stringToTime(it.CreatedAt),
		UpdatedAt:  stringToTime(it.UpdatedAt),
	}
}
