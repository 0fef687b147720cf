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

const defaultCatalogTableName = "catalog_services"

type catalogServiceItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

// CatalogDynamoRepository reads the service catalog table. Prices read here
// become snapshots on items; later catalog edits never touch existing items.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalog = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) GetService(ctx context.Context, id string) (entities.CatalogService, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.CatalogService{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogService{}, nil
	}

	var it catalogServiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogService{}, err
	}
	return entities.CatalogService{ID: it.ID, Name: it.Name, Price: stringToFloat(it.Price)}, nil
}
