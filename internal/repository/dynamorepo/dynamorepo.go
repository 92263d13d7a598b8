package dynamorepo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mrled/addrbook/internal/model"
	"github.com/mrled/addrbook/internal/repository/codec"
)

// DynamoAPI is the subset of *dynamodb.Client the repository uses
type DynamoAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoRepository is a DynamoDB implementation of DirectoryStore.
// Each contact is one item keyed by name.
type DynamoRepository struct {
	client    DynamoAPI
	tableName string
}

// NewDynamoRepository creates a new DynamoDB-backed repository
func NewDynamoRepository(client DynamoAPI, tableName string) *DynamoRepository {
	return &DynamoRepository{
		client:    client,
		tableName: tableName,
	}
}

// TableName returns the DynamoDB table the repository reads and writes
func (r *DynamoRepository) TableName() string {
	return r.tableName
}

// scan reads every item in the table, following pagination
func (r *DynamoRepository) scan(ctx context.Context) ([]*DynamoDTO, error) {
	var dtos []*DynamoDTO

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contacts: %w", err)
		}

		var items []*DynamoDTO
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal contacts: %w", codec.ErrCorrupt, err)
		}
		dtos = append(dtos, items...)
	}

	return dtos, nil
}

// Load reads all contacts from the table. An empty table is an empty address book.
func (r *DynamoRepository) Load(ctx context.Context) (*model.Directory, error) {
	dtos, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	return codec.ContactsToDirectory(ToContactList(dtos))
}

// Save writes every contact and removes items for contacts no longer in book
func (r *DynamoRepository) Save(ctx context.Context, book *model.Directory) error {
	if book == nil {
		return fmt.Errorf("address book cannot be nil")
	}

	existing, err := r.scan(ctx)
	if err != nil {
		return err
	}

	doc := codec.FromDirectory(book)
	keep := make(map[string]bool, len(doc.Contacts))
	for _, dto := range FromContactList(doc.Contacts) {
		item, err := attributevalue.MarshalMap(dto)
		if err != nil {
			return fmt.Errorf("failed to marshal contact %s: %w", dto.PK, err)
		}

		_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      item,
		})
		if err != nil {
			return fmt.Errorf("failed to store contact %s: %w", dto.PK, err)
		}
		keep[dto.PK] = true
	}

	for _, dto := range existing {
		if keep[dto.PK] {
			continue
		}
		_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"pk": &types.AttributeValueMemberS{Value: dto.PK},
			},
		})
		if err != nil {
			return fmt.Errorf("failed to delete contact %s: %w", dto.PK, err)
		}
	}

	return nil
}
