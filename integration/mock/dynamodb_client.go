package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBClient is an in-memory aws.DynamoDBClient for tables keyed by a
// single string partition key.
type DynamoDBClient struct {
	mu            sync.RWMutex
	tables        map[string]map[string]map[string]types.AttributeValue
	keyAttr       string
	failNextWrite bool
	puts          int
}

// NewDynamoDBClient creates a mock whose tables use keyAttr as partition key.
func NewDynamoDBClient(keyAttr string) *DynamoDBClient {
	return &DynamoDBClient{
		tables:  make(map[string]map[string]map[string]types.AttributeValue),
		keyAttr: keyAttr,
	}
}

// SetFailNextWrite makes the next PutItem fail.
func (m *DynamoDBClient) SetFailNextWrite(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNextWrite = fail
}

func (m *DynamoDBClient) keyOf(attrs map[string]types.AttributeValue) (string, error) {
	v, ok := attrs[m.keyAttr].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("mock DynamoDB: missing string key attribute %q", m.keyAttr)
	}
	return v.Value, nil
}

func (m *DynamoDBClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	key, err := m.keyOf(params.Key)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.tables[*params.TableName][key]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (m *DynamoDBClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	key, err := m.keyOf(params.Item)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNextWrite {
		m.failNextWrite = false
		return nil, &types.ProvisionedThroughputExceededException{Message: stringPtr("simulated throttle")}
	}
	table := m.tables[*params.TableName]
	if table == nil {
		table = make(map[string]map[string]types.AttributeValue)
		m.tables[*params.TableName] = table
	}
	table[key] = params.Item
	m.puts++
	return &dynamodb.PutItemOutput{}, nil
}

func (m *DynamoDBClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	key, err := m.keyOf(params.Key)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tables[*params.TableName], key)
	return &dynamodb.DeleteItemOutput{}, nil
}

// Item returns the stored attributes for key, or nil.
func (m *DynamoDBClient) Item(table, key string) map[string]types.AttributeValue {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tables[table][key]
}

// Puts counts successful PutItem calls.
func (m *DynamoDBClient) Puts() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.puts
}

func stringPtr(s string) *string { return &s }
