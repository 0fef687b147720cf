package repository

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultGaragesTableName   = "garages"
	defaultVehiclesTableName  = "vehicles"
	defaultMechanicsTableName = "mechanics"
)

type garageItem struct {
	ID        string `dynamodbav:"id"`
	OwnerID   string `dynamodbav:"owner_id"`
	Approved  bool   `dynamodbav:"approved"`
	Available bool   `dynamodbav:"available"`
	Removed   bool   `dynamodbav:"removed"`
}

type vehicleItem struct {
	ID      string `dynamodbav:"id"`
	OwnerID string `dynamodbav:"owner_id"`
}

type mechanicItem struct {
	ID       string `dynamodbav:"id"`
	GarageID string `dynamodbav:"garage_id"`
	Approved bool   `dynamodbav:"approved"`
}

// DirectoryDynamoRepository reads the garage/vehicle/mechanic directory
// tables owned by the registration service. The workflow engine never writes
// them.

type DirectoryDynamoRepository struct {
	ddb            *dynamodb.Client
	garagesTable   string
	vehiclesTable  string
	mechanicsTable string
}

var _ interfaces.IDirectory = (*DirectoryDynamoRepository)(nil)

func NewDirectoryDynamoRepository(ddb *dynamodb.Client) *DirectoryDynamoRepository {
	return &DirectoryDynamoRepository{
		ddb:            ddb,
		garagesTable:   getenvDefault("GARAGES_TABLE", defaultGaragesTableName),
		vehiclesTable:  getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
		mechanicsTable: getenvDefault("MECHANICS_TABLE", defaultMechanicsTableName),
	}
}

func (r *DirectoryDynamoRepository) GetGarage(ctx context.Context, id string) (entities.Garage, error) {
	raw, err := r.getItem(ctx, r.garagesTable, id)
	if err != nil || raw == nil {
		return entities.Garage{}, err
	}

	var it garageItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Garage{}, err
	}
	return entities.Garage{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		Approved:  it.Approved,
		Available: it.Available,
		Removed:   it.Removed,
	}, nil
}

func (r *DirectoryDynamoRepository) GetVehicle(ctx context.Context, id string) (entities.Vehicle, error) {
	raw, err := r.getItem(ctx, r.vehiclesTable, id)
	if err != nil || raw == nil {
		return entities.Vehicle{}, err
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return entities.Vehicle{ID: it.ID, OwnerID: it.OwnerID}, nil
}

func (r *DirectoryDynamoRepository) GetMechanic(ctx context.Context, id string) (entities.Mechanic, error) {
	raw, err := r.getItem(ctx, r.mechanicsTable, id)
	if err != nil || raw == nil {
		return entities.Mechanic{}, err
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Mechanic{}, err
	}
	return entities.Mechanic{ID: it.ID, GarageID: it.GarageID, Approved: it.Approved}, nil
}

func (r *DirectoryDynamoRepository) getItem(ctx context.Context, table, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}
