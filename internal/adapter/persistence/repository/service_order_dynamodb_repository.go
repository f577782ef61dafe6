package repository

import (
	"context"
	"errors"
	"strconv"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	serviceOrdersBudgetIDIndex    = "budget_id-index"
)

type serviceOrderItem struct {
	OrderID                string `dynamodbav:"order_id"`
	BudgetID               string `dynamodbav:"budget_id"`
	CustomerID             string `dynamodbav:"customer_id"`
	PaymentID              string `dynamodbav:"payment_id,omitempty"`
	Status                 string `dynamodbav:"status"`
	SyncedWithOrderService bool   `dynamodbav:"synced_with_order_service"`
	LastSyncAt             string `dynamodbav:"last_sync_at,omitempty"`
	SyncError              string `dynamodbav:"sync_error,omitempty"`
	SyncAttempts           int    `dynamodbav:"sync_attempts"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
	Version                int64  `dynamodbav:"version"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - GSI: budget_id-index (PK: budget_id)
//
// ListPendingSync is a filtered scan; the reconciliation sweep runs every 30
// seconds over a small table, so a scan is acceptable here.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "order_id",
		},
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) GetByBudgetID(ctx context.Context, budgetID string) (entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceOrdersBudgetIDIndex),
		KeyConditionExpression: aws.String("#bid = :bid"),
		ExpressionAttributeNames: map[string]string{
			"#bid": "budget_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	expected := o.Version
	o.Version = expected + 1

	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "order_id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			current, gerr := r.GetByOrderID(ctx, o.OrderID)
			if gerr != nil {
				return entities.ServiceOrder{}, gerr
			}
			if current.OrderID == "" {
				return entities.ServiceOrder{}, nil
			}
			return entities.ServiceOrder{}, interfaces.ErrVersionConflict
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) ListPendingSync(ctx context.Context, maxAttempts int) ([]entities.ServiceOrder, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#synced = :synced AND #attempts < :max"),
		ExpressionAttributeNames: map[string]string{
			"#synced":   "synced_with_order_service",
			"#attempts": "sync_attempts",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":synced": &types.AttributeValueMemberBOOL{Value: false},
			":max":    &types.AttributeValueMemberN{Value: strconv.Itoa(maxAttempts)},
		},
	})
	if err != nil {
		return nil, err
	}

	var its []serviceOrderItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &its); err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(its))
	for _, it := range its {
		orders = append(orders, fromServiceOrderItem(it))
	}
	return orders, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		OrderID:                o.OrderID,
		BudgetID:               o.BudgetID,
		CustomerID:             o.CustomerID,
		PaymentID:              o.PaymentID,
		Status:                 string(o.Status),
		SyncedWithOrderService: o.SyncedWithOrderService,
		LastSyncAt:             formatTimePtr(o.LastSyncAt),
		SyncError:              o.SyncError,
		SyncAttempts:           o.SyncAttempts,
		CreatedAt:              formatTime(o.CreatedAt),
		UpdatedAt:              formatTime(o.UpdatedAt),
		Version:                o.Version,
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		OrderID:                it.OrderID,
		BudgetID:               it.BudgetID,
		CustomerID:             it.CustomerID,
		PaymentID:              it.PaymentID,
		Status:                 entities.ServiceOrderStatus(it.Status),
		SyncedWithOrderService: it.SyncedWithOrderService,
		LastSyncAt:             parseTimePtr(it.LastSyncAt),
		SyncError:              it.SyncError,
		SyncAttempts:           it.SyncAttempts,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
		Version:                it.Version,
	}
}
