package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName = "budgets"
	budgetsCustomerIDIndex  = "customer_id-index"
)

type budgetVehicleItem struct {
	LicensePlate string `dynamodbav:"license_plate,omitempty"`
	Model        string `dynamodbav:"model,omitempty"`
	Year         int    `dynamodbav:"year,omitempty"`
	Brand        string `dynamodbav:"brand,omitempty"`
}

type budgetLineItem struct {
	Description string  `dynamodbav:"description"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Total       float64 `dynamodbav:"total"`
}

type budgetItem struct {
	BudgetID       string            `dynamodbav:"budget_id"`
	CustomerID     string            `dynamodbav:"customer_id"`
	CustomerEmail  string            `dynamodbav:"customer_email"`
	CustomerName   string            `dynamodbav:"customer_name"`
	VehicleInfo    budgetVehicleItem `dynamodbav:"vehicle_info"`
	Items          []budgetLineItem  `dynamodbav:"items"`
	TotalAmount    float64           `dynamodbav:"total_amount"`
	TaxAmount      float64           `dynamodbav:"tax_amount"`
	DiscountAmount float64           `dynamodbav:"discount_amount"`
	Status         string            `dynamodbav:"status"`
	SentAt         string            `dynamodbav:"sent_at,omitempty"`
	ApprovedAt     string            `dynamodbav:"approved_at,omitempty"`
	RejectedAt     string            `dynamodbav:"rejected_at,omitempty"`
	ExpiresAt      string            `dynamodbav:"expires_at"`
	Notes          string            `dynamodbav:"notes,omitempty"`
	CreatedAt      string            `dynamodbav:"created_at"`
	UpdatedAt      string            `dynamodbav:"updated_at"`
	Version        int64             `dynamodbav:"version"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: budget_id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Updates are full-document replaces guarded by the version attribute, so a
// stale writer gets interfaces.ErrVersionConflict instead of clobbering a
// concurrent update.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "budget_id",
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByBudgetID(ctx context.Context, budgetID string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"budget_id": &types.AttributeValueMemberS{Value: budgetID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	expected := b.Version
	b.Version = expected + 1

	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "budget_id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.resolveConflict(ctx, b.BudgetID)
		}
		return entities.Budget{}, err
	}
	return b, nil
}

// resolveConflict disambiguates a failed condition: a vanished document is
// reported as absent (zero value), a live one as a version conflict.
func (r *BudgetDynamoRepository) resolveConflict(ctx context.Context, budgetID string) (entities.Budget, error) {
	current, err := r.GetByBudgetID(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if current.BudgetID == "" {
		return entities.Budget{}, nil
	}
	return entities.Budget{}, interfaces.ErrVersionConflict
}

func (r *BudgetDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Budget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsCustomerIDIndex),
		KeyConditionExpression: aws.String("#cid = :cid"),
		ExpressionAttributeNames: map[string]string{
			"#cid": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	var its []budgetItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &its); err != nil {
		return nil, err
	}

	budgets := make([]entities.Budget, 0, len(its))
	for _, it := range its {
		budgets = append(budgets, fromBudgetItem(it))
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.After(budgets[j].CreatedAt)
	})
	return budgets, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	items := make([]budgetLineItem, 0, len(b.Items))
	for _, li := range b.Items {
		items = append(items, budgetLineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total,
		})
	}
	return budgetItem{
		BudgetID:      b.BudgetID,
		CustomerID:    b.CustomerID,
		CustomerEmail: b.CustomerEmail,
		CustomerName:  b.CustomerName,
		VehicleInfo: budgetVehicleItem{
			LicensePlate: b.VehicleInfo.LicensePlate,
			Model:        b.VehicleInfo.Model,
			Year:         b.VehicleInfo.Year,
			Brand:        b.VehicleInfo.Brand,
		},
		Items:          items,
		TotalAmount:    b.TotalAmount,
		TaxAmount:      b.TaxAmount,
		DiscountAmount: b.DiscountAmount,
		Status:         string(b.Status),
		SentAt:         formatTimePtr(b.SentAt),
		ApprovedAt:     formatTimePtr(b.ApprovedAt),
		RejectedAt:     formatTimePtr(b.RejectedAt),
		ExpiresAt:      formatTime(b.ExpiresAt),
		Notes:          b.Notes,
		CreatedAt:      formatTime(b.CreatedAt),
		UpdatedAt:      formatTime(b.UpdatedAt),
		Version:        b.Version,
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	items := make([]entities.BudgetItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.BudgetItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total,
		})
	}
	return entities.Budget{
		BudgetID:      it.BudgetID,
		CustomerID:    it.CustomerID,
		CustomerEmail: it.CustomerEmail,
		CustomerName:  it.CustomerName,
		VehicleInfo: entities.VehicleInfo{
			LicensePlate: it.VehicleInfo.LicensePlate,
			Model:        it.VehicleInfo.Model,
			Year:         it.VehicleInfo.Year,
			Brand:        it.VehicleInfo.Brand,
		},
		Items:          items,
		TotalAmount:    it.TotalAmount,
		TaxAmount:      it.TaxAmount,
		DiscountAmount: it.DiscountAmount,
		Status:         entities.BudgetStatus(it.Status),
		SentAt:         parseTimePtr(it.SentAt),
		ApprovedAt:     parseTimePtr(it.ApprovedAt),
		RejectedAt:     parseTimePtr(it.RejectedAt),
		ExpiresAt:      parseTime(it.ExpiresAt),
		Notes:          it.Notes,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		Version:        it.Version,
	}
}
