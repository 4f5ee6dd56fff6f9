package repository

import (
	"context"
	"strings"

	"financier/internal/domain/entities"
	"financier/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGatewayLinksTableName = "gateway_links"

// DynamoDBAPI is the part of *dynamodb.Client the repositories use.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type gatewayLinkItem struct {
	ID                    string `dynamodbav:"id"`
	OwnerType             string `dynamodbav:"owner_type"`
	OwnerID               string `dynamodbav:"owner_id"`
	Attribute             string `dynamodbav:"attribute"`
	GatewayID             string `dynamodbav:"gateway_id"`
	OrganisationAccountID string `dynamodbav:"organisation_account_id,omitempty"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// GatewayLinkDynamoRepository persists GatewayLink entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, "<owner_type>#<owner_id>")

type GatewayLinkDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IGatewayLinkRepository = (*GatewayLinkDynamoRepository)(nil)

func NewGatewayLinkDynamoRepository(ddb DynamoDBAPI, tableName string) *GatewayLinkDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = defaultGatewayLinksTableName
	}
	return &GatewayLinkDynamoRepository{ddb: ddb, tableName: tableName}
}

// Save upserts the link; the id is derived from owner type and owner id.
func (r *GatewayLinkDynamoRepository) Save(ctx context.Context, link entities.GatewayLink) (entities.GatewayLink, error) {
	link.ID = entities.GatewayLinkID(link.OwnerType, link.OwnerID)
	av, err := attributevalue.MarshalMap(toGatewayLinkItem(link))
	if err != nil {
		return entities.GatewayLink{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.GatewayLink{}, err
	}
	return link, nil
}

// Get returns a zero GatewayLink when none is stored.
func (r *GatewayLinkDynamoRepository) Get(ctx context.Context, owner entities.GatewayLinkOwner, ownerID string) (entities.GatewayLink, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            linkKey(owner, ownerID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GatewayLink{}, err
	}
	if len(out.Item) == 0 {
		return entities.GatewayLink{}, nil
	}

	var it gatewayLinkItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GatewayLink{}, err
	}
	return fromGatewayLinkItem(it), nil
}

func (r *GatewayLinkDynamoRepository) Delete(ctx context.Context, owner entities.GatewayLinkOwner, ownerID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       linkKey(owner, ownerID),
	})
	return err
}

func linkKey(owner entities.GatewayLinkOwner, ownerID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: entities.GatewayLinkID(owner, ownerID)},
	}
}

func toGatewayLinkItem(l entities.GatewayLink) gatewayLinkItem {
	return gatewayLinkItem{
		ID:                    l.ID,
		OwnerType:             string(l.OwnerType),
		OwnerID:               l.OwnerID,
		Attribute:             l.Attribute,
		GatewayID:             l.GatewayID,
		OrganisationAccountID: l.OrganisationAccountID,
		CreatedAt:             formatTime(l.CreatedAt),
		UpdatedAt:             formatTime(l.UpdatedAt),
	}
}

func fromGatewayLinkItem(it gatewayLinkItem) entities.GatewayLink {
	return entities.GatewayLink{
		ID:                    it.ID,
		OwnerType:             entities.GatewayLinkOwner(it.OwnerType),
		OwnerID:               it.OwnerID,
		Attribute:             it.Attribute,
		GatewayID:             it.GatewayID,
		OrganisationAccountID: it.OrganisationAccountID,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}
