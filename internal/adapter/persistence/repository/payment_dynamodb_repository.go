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
	defaultPaymentsTableName = "payments"
	paymentsBudgetIDIndex    = "budget_id-index"
)

type paymentDetailsItem struct {
	TransactionID     string `dynamodbav:"transaction_id,omitempty"`
	AuthorizationCode string `dynamodbav:"authorization_code,omitempty"`
	Installments      int    `dynamodbav:"installments,omitempty"`
	CardLastDigits    string `dynamodbav:"card_last_digits,omitempty"`
}

type paymentItem struct {
	PaymentID      string             `dynamodbav:"payment_id"`
	BudgetID       string             `dynamodbav:"budget_id"`
	OrderID        string             `dynamodbav:"order_id,omitempty"`
	CustomerID     string             `dynamodbav:"customer_id"`
	Amount         float64            `dynamodbav:"amount"`
	PaymentMethod  string             `dynamodbav:"payment_method"`
	Status         string             `dynamodbav:"status"`
	PaymentDetails paymentDetailsItem `dynamodbav:"payment_details"`
	ProcessedAt    string             `dynamodbav:"processed_at,omitempty"`
	CompletedAt    string             `dynamodbav:"completed_at,omitempty"`
	FailureReason  string             `dynamodbav:"failure_reason,omitempty"`
	RefundedAmount float64            `dynamodbav:"refunded_amount"`
	RefundedAt     string             `dynamodbav:"refunded_at,omitempty"`
	CreatedAt      string             `dynamodbav:"created_at"`
	UpdatedAt      string             `dynamodbav:"updated_at"`
	Version        int64              `dynamodbav:"version"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: payment_id (string)
//   - GSI: budget_id-index (PK: budget_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "payment_id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	expected := p.Version
	p.Version = expected + 1

	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "payment_id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			current, gerr := r.GetByPaymentID(ctx, p.PaymentID)
			if gerr != nil {
				return entities.Payment{}, gerr
			}
			if current.PaymentID == "" {
				return entities.Payment{}, nil
			}
			return entities.Payment{}, interfaces.ErrVersionConflict
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBudgetIDIndex),
		KeyConditionExpression: aws.String("#bid = :bid"),
		ExpressionAttributeNames: map[string]string{
			"#bid": "budget_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
	})
	if err != nil {
		return nil, err
	}

	var its []paymentItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &its); err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(its))
	for _, it := range its {
		payments = append(payments, fromPaymentItem(it))
	}
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		PaymentID:     p.PaymentID,
		BudgetID:      p.BudgetID,
		OrderID:       p.OrderID,
		CustomerID:    p.CustomerID,
		Amount:        p.Amount,
		PaymentMethod: string(p.PaymentMethod),
		Status:        string(p.Status),
		PaymentDetails: paymentDetailsItem{
			TransactionID:     p.PaymentDetails.TransactionID,
			AuthorizationCode: p.PaymentDetails.AuthorizationCode,
			Installments:      p.PaymentDetails.Installments,
			CardLastDigits:    p.PaymentDetails.CardLastDigits,
		},
		ProcessedAt:    formatTimePtr(p.ProcessedAt),
		CompletedAt:    formatTimePtr(p.CompletedAt),
		FailureReason:  p.FailureReason,
		RefundedAmount: p.RefundedAmount,
		RefundedAt:     formatTimePtr(p.RefundedAt),
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
		Version:        p.Version,
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		PaymentID:     it.PaymentID,
		BudgetID:      it.BudgetID,
		OrderID:       it.OrderID,
		CustomerID:    it.CustomerID,
		Amount:        it.Amount,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		Status:        entities.PaymentStatus(it.Status),
		PaymentDetails: entities.PaymentDetails{
			TransactionID:     it.PaymentDetails.TransactionID,
			AuthorizationCode: it.PaymentDetails.AuthorizationCode,
			Installments:      it.PaymentDetails.Installments,
			CardLastDigits:    it.PaymentDetails.CardLastDigits,
		},
		ProcessedAt:    parseTimePtr(it.ProcessedAt),
		CompletedAt:    parseTimePtr(it.CompletedAt),
		FailureReason:  it.FailureReason,
		RefundedAmount: it.RefundedAmount,
		RefundedAt:     parseTimePtr(it.RefundedAt),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		Version:        it.Version,
	}
}
