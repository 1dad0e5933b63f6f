package repository

import (
	"context"
	"log"
	"time"

	"payment_processor/internal/domain/entities"
	"payment_processor/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const defaultAnalyticsTableName = "payment_analytics"

type dynamoPutter interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type analyticsEventItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	Amount     string `dynamodbav:"amount"`
	Currency   string `dynamodbav:"currency"`
	Method     string `dynamodbav:"method"`
	RecordedAt string `dynamodbav:"recorded_at"`
}

// AnalyticsDynamoLogger appends payment analytics events to DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Write failures are logged and dropped.
type AnalyticsDynamoLogger struct {
	ddb       dynamoPutter
	tableName string
	now       func() time.Time
}

var _ interfaces.IAnalyticsLogger = (*AnalyticsDynamoLogger)(nil)

func NewAnalyticsDynamoLogger(ddb *dynamodb.Client) *AnalyticsDynamoLogger {
	return &AnalyticsDynamoLogger{
		ddb:       ddb,
		tableName: getenvDefault("ANALYTICS_TABLE", defaultAnalyticsTableName),
		now:       time.Now,
	}
}

func (r *AnalyticsDynamoLogger) Log(ctx context.Context, event entities.AnalyticsEvent) {
	it := toAnalyticsEventItem(event, uuid.NewString(), r.now())
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		log.Printf("[payment][analytics] marshal failed user_id=%s err=%v", event.UserID, err)
		return
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
		log.Printf("[payment][analytics] put failed table=%s id=%s user_id=%s err=%v", r.tableName, it.ID, event.UserID, err)
		return
	}
	log.Printf("[payment][analytics] recorded id=%s user_id=%s amount=%s currency=%s method=%s",
		it.ID, it.UserID, it.Amount, it.Currency, it.Method)
}

func toAnalyticsEventItem(e entities.AnalyticsEvent, id string, at time.Time) analyticsEventItem {
	return analyticsEventItem{
		ID:         id,
		UserID:     e.UserID,
		Amount:     e.Amount.String(),
		Currency:   e.Currency,
		Method:     string(e.Method),
		RecordedAt: at.UTC().Format(time.RFC3339Nano),
	}
}

// LogAnalytics is the analytics sink used when DynamoDB is not configured.
type LogAnalytics struct{}

var _ interfaces.IAnalyticsLogger = LogAnalytics{}

func (LogAnalytics) Log(_ context.Context, event entities.AnalyticsEvent) {
	log.Printf("[payment][analytics] user_id=%s amount=%s currency=%s method=%s",
		event.UserID, event.Amount, event.Currency, event.Method)
}
