package store

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/gurre/waf-regional/aws"
)

// dynamoKeyAttr is the table's partition key. The table needs no sort key.
const dynamoKeyAttr = "pk"

type dynamoItem struct {
	Key       string    `dynamodbav:"pk"`
	Data      []byte    `dynamodbav:"data"`
	UpdatedAt time.Time `dynamodbav:"updatedAt"`
}

// DynamoDBStore keeps one item per key in a table with a string partition
// key named "pk".
type DynamoDBStore struct {
	client aws.DynamoDBClient
	table  string
	now    func() time.Time
}

func NewDynamoDBStore(client aws.DynamoDBClient, table string) *DynamoDBStore {
	return &DynamoDBStore{client: client, table: table, now: time.Now}
}

func (s *DynamoDBStore) keyOf(key string) (map[string]types.AttributeValue, error) {
	key, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{
		dynamoKeyAttr: &types.AttributeValueMemberS{Value: key},
	}, nil
}

func (s *DynamoDBStore) Get(ctx context.Context, key string) ([]byte, error) {
	k, err := s.keyOf(key)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &s.table,
		Key:            k,
		ConsistentRead: boolPtr(true),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "get %s from table %s", key, s.table)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}

	var item dynamoItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, errors.Wrapf(err, "decode item %s", key)
	}
	return item.Data, nil
}

func (s *DynamoDBStore) Put(ctx context.Context, key string, data []byte) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(dynamoItem{
		Key:       key,
		Data:      data,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return errors.Wrapf(err, "encode item %s", key)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.table,
		Item:      av,
	}); err != nil {
		return errors.Wrapf(err, "put %s into table %s", key, s.table)
	}
	return nil
}

func (s *DynamoDBStore) Delete(ctx context.Context, key string) error {
	k, err := s.keyOf(key)
	if err != nil {
		return err
	}
	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.table,
		Key:       k,
	}); err != nil {
		return errors.Wrapf(err, "delete %s from table %s", key, s.table)
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }
