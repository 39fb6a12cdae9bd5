package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName   = "invoices"
	defaultFiscalKeysTableName = "invoice_fiscal_keys"

	conditionalCheckFailed = "ConditionalCheckFailed"
)

type invoiceItem struct {
	ID             string `dynamodbav:"id"`
	InvoiceNumber  string `dynamodbav:"invoice_number"`
	FiscalKey      string `dynamodbav:"fiscal_key"`
	CollectionDate string `dynamodbav:"collection_date"`
	DeliveryDate   string `dynamodbav:"delivery_date,omitempty"`
	Recipient      string `dynamodbav:"recipient"`
	City           string `dynamodbav:"city"`
	State          string `dynamodbav:"state"`
	Status         string `dynamodbav:"status"`
	ProofPhotoURL  string `dynamodbav:"proof_photo_url,omitempty"`
	ProofPhotoPath string `dynamodbav:"proof_photo_path,omitempty"`
	SearchText     string `dynamodbav:"search_text"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type fiscalKeyItem struct {
	FiscalKey string `dynamodbav:"fiscal_key"`
	InvoiceID string `dynamodbav:"invoice_id"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - invoices: PK id (string)
//   - invoice_fiscal_keys: PK fiscal_key (string), attribute invoice_id
//
// The key table enforces fiscal key uniqueness: both items are always written
// in the same transaction, so a key item exists iff its invoice does.

type InvoiceDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	fiscalKeysTable string
	now             func() time.Time
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client, tableName, fiscalKeysTable string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:             ddb,
		tableName:       valueOrDefault(tableName, defaultInvoicesTableName),
		fiscalKeysTable: valueOrDefault(fiscalKeysTable, defaultFiscalKeysTableName),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	invoiceAV, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}
	keyAV, err := attributevalue.MarshalMap(fiscalKeyItem{FiscalKey: inv.FiscalKey, InvoiceID: inv.ID})
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     invoiceAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.fiscalKeysTable),
				Item:                     keyAV,
				ConditionExpression:      aws.String("attribute_not_exists(#fk)"),
				ExpressionAttributeNames: map[string]string{"#fk": "fiscal_key"},
			}},
		},
	})
	if err != nil {
		if transactionConditionFailed(err, 1) {
			return entities.Invoice{}, entities.ErrDuplicateFiscalKey
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByFiscalKey(ctx context.Context, fiscalKey string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.fiscalKeysTable),
		Key: map[string]types.AttributeValue{
			"fiscal_key": &types.AttributeValueMemberS{Value: fiscalKey},
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var key fiscalKeyItem
	if err := attributevalue.UnmarshalMap(out.Item, &key); err != nil {
		return entities.Invoice{}, err
	}
	inv, err := r.GetByID(ctx, key.InvoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.FiscalKey != fiscalKey {
		return entities.Invoice{}, nil
	}
	return inv, nil
}

// List scans the table with the status and search filters applied server side,
// then orders and slices the matches in memory.
func (r *InvoiceDynamoRepository) List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, int, error) {
	filter = filter.Normalized()
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: filter.Status}
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Search)); q != "" {
		conds = append(conds, "contains(#search_text, :q)")
		names["#search_text"] = "search_text"
		values[":q"] = &types.AttributeValueMemberS{Value: q}
	}
	if len(conds) > 0 {
		input.FilterExpression = aws.String(strings.Join(conds, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var all []entities.Invoice
	p := dynamodb.NewScanPaginator(r.ddb, input)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, 0, err
		}
		for _, raw := range out.Items {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, 0, err
			}
			all = append(all, fromInvoiceItem(it))
		}
	}

	sortInvoices(all)
	return pageOf(all, filter), len(all), nil
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if current.ID == "" {
		return entities.Invoice{}, nil
	}

	next := patch.Apply(current)
	next.UpdatedAt = r.now()
	invoiceAV, err := attributevalue.MarshalMap(toInvoiceItem(next))
	if err != nil {
		return entities.Invoice{}, err
	}

	putInvoice := &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     invoiceAV,
		ConditionExpression:      aws.String("attribute_exists(#id) AND #fk = :prev_fk"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#fk": "fiscal_key"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prev_fk": &types.AttributeValueMemberS{Value: current.FiscalKey},
		},
	}

	if next.FiscalKey == current.FiscalKey {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                 putInvoice.TableName,
			Item:                      putInvoice.Item,
			ConditionExpression:       putInvoice.ConditionExpression,
			ExpressionAttributeNames:  putInvoice.ExpressionAttributeNames,
			ExpressionAttributeValues: putInvoice.ExpressionAttributeValues,
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				return entities.Invoice{}, nil
			}
			return entities.Invoice{}, err
		}
		return next, nil
	}

	keyAV, err := attributevalue.MarshalMap(fiscalKeyItem{FiscalKey: next.FiscalKey, InvoiceID: id})
	if err != nil {
		return entities.Invoice{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: putInvoice},
			{Put: &types.Put{
				TableName:                aws.String(r.fiscalKeysTable),
				Item:                     keyAV,
				ConditionExpression:      aws.String("attribute_not_exists(#fk)"),
				ExpressionAttributeNames: map[string]string{"#fk": "fiscal_key"},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.fiscalKeysTable),
				Key: map[string]types.AttributeValue{
					"fiscal_key": &types.AttributeValueMemberS{Value: current.FiscalKey},
				},
			}},
		},
	})
	if err != nil {
		if transactionConditionFailed(err, 1) {
			return entities.Invoice{}, entities.ErrDuplicateFiscalKey
		}
		if transactionConditionFailed(err, 0) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	return next, nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: id},
				},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.fiscalKeysTable),
				Key: map[string]types.AttributeValue{
					"fiscal_key": &types.AttributeValueMemberS{Value: current.FiscalKey},
				},
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("delete invoice %s: %w", id, err)
	}
	return nil
}

// transactionConditionFailed reports whether the transaction was cancelled
// because the condition of item idx did not hold.
func transactionConditionFailed(err error, idx int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	if idx >= len(tce.CancellationReasons) {
		return false
	}
	return aws.ToString(tce.CancellationReasons[idx].Code) == conditionalCheckFailed
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		FiscalKey:      inv.FiscalKey,
		CollectionDate: entities.FormatDate(inv.CollectionDate),
		DeliveryDate:   formatOptionalDate(inv.DeliveryDate),
		Recipient:      inv.Recipient,
		City:           inv.City,
		State:          inv.State,
		Status:         string(inv.Status),
		ProofPhotoURL:  inv.ProofPhotoURL,
		ProofPhotoPath: inv.ProofPhotoPath,
		SearchText:     searchText(inv),
		CreatedAt:      formatTimestamp(inv.CreatedAt),
		UpdatedAt:      formatTimestamp(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	collection, _ := entities.ParseDate(it.CollectionDate)
	return entities.Invoice{
		ID:             it.ID,
		InvoiceNumber:  it.InvoiceNumber,
		FiscalKey:      it.FiscalKey,
		CollectionDate: collection,
		DeliveryDate:   parseOptionalDate(it.DeliveryDate),
		Recipient:      it.Recipient,
		City:           it.City,
		State:          it.State,
		Status:         entities.InvoiceStatus(it.Status),
		ProofPhotoURL:  it.ProofPhotoURL,
		ProofPhotoPath: it.ProofPhotoPath,
		CreatedAt:      parseTimestamp(it.CreatedAt),
		UpdatedAt:      parseTimestamp(it.UpdatedAt),
	}
}
