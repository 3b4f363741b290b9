package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"saude_conecta/internal/domain/entities"
	"saude_conecta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContractsTableName = "contracts"

type contractItem struct {
	ID                 string            `dynamodbav:"id"`
	ContractNumber     string            `dynamodbav:"contract_number"`
	ContractableType   string            `dynamodbav:"contractable_type"`
	ContractableID     string            `dynamodbav:"contractable_id"`
	Status             string            `dynamodbav:"status"`
	TemplateData       map[string]string `dynamodbav:"template_data,omitempty"`
	IsSigned           bool              `dynamodbav:"is_signed"`
	SignedAt           string            `dynamodbav:"signed_at,omitempty"`
	SignatureTokenHash string            `dynamodbav:"signature_token_hash,omitempty"`
	RejectedStep       string            `dynamodbav:"rejected_step,omitempty"`
	StartDate          string            `dynamodbav:"start_date,omitempty"`
	EndDate            string            `dynamodbav:"end_date,omitempty"`
	Version            int64             `dynamodbav:"version"`
	CreatedAt          string            `dynamodbav:"created_at"`
	UpdatedAt          string            `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - contracts: PK id (string), version attribute (number)
//   - approval_records: PK id (string), GSI contract_id-index
//
// Accepted transitions are committed with TransactWriteItems: the new
// contract state is a whole-item Put conditioned on the stored version
// still matching the caller's expected version, and the approval record
// is Put in the same transaction. Either both items land or neither does.

type ContractDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	ledgerTableName string
}

var _ interfaces.IContractStore = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
		ledgerTableName: getenvDefault("APPROVAL_RECORDS_TABLE", defaultApprovalRecordsTableName),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
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
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) CommitTransition(ctx context.Context, c entities.Contract, expectedVersion int64, rec entities.ApprovalRecord) (entities.Contract, error) {
	contractAV, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}
	recordAV, err := attributevalue.MarshalMap(toApprovalRecordItem(rec))
	if err != nil {
		return entities.Contract{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                contractAV,
					ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
					ExpressionAttributeNames: map[string]string{
						"#id":      "id",
						"#version": "version",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":expected": &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.ledgerTableName),
					Item:                recordAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if isVersionConditionFailure(err) {
			return entities.Contract{}, interfaces.ErrVersionConflict
		}
		return entities.Contract{}, err
	}
	return c, nil
}

// isVersionConditionFailure reports whether the transaction was cancelled
// because the contract's version condition no longer held (a lost CAS
// race), as opposed to throttling or another storage fault.
func isVersionConditionFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toContractItem(c entities.Contract) contractItem {
	it := contractItem{
		ID:                 c.ID,
		ContractNumber:     c.ContractNumber,
		ContractableType:   string(c.ContractableType),
		ContractableID:     c.ContractableID,
		Status:             string(c.Status),
		TemplateData:       c.TemplateData,
		IsSigned:           c.IsSigned,
		SignatureTokenHash: c.SignatureTokenHash,
		RejectedStep:       string(c.RejectedStep),
		Version:            c.Version,
		CreatedAt:          c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.SignedAt != nil {
		it.SignedAt = c.SignedAt.UTC().Format(time.RFC3339Nano)
	}
	if !c.StartDate.IsZero() {
		it.StartDate = c.StartDate.UTC().Format(time.RFC3339Nano)
	}
	if !c.EndDate.IsZero() {
		it.EndDate = c.EndDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromContractItem(it contractItem) entities.Contract {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	c := entities.Contract{
		ID:                 it.ID,
		ContractNumber:     it.ContractNumber,
		ContractableType:   entities.ContractableType(it.ContractableType),
		ContractableID:     it.ContractableID,
		Status:             entities.ContractStatus(it.Status),
		TemplateData:       it.TemplateData,
		IsSigned:           it.IsSigned,
		SignatureTokenHash: it.SignatureTokenHash,
		RejectedStep:       entities.ApprovalStep(it.RejectedStep),
		Version:            it.Version,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	if strings.TrimSpace(it.SignedAt) != "" {
		if signedAt, err := time.Parse(time.RFC3339Nano, it.SignedAt); err == nil {
			c.SignedAt = &signedAt
		}
	}
	if strings.TrimSpace(it.StartDate) != "" {
		c.StartDate, _ = time.Parse(time.RFC3339Nano, it.StartDate)
	}
	if strings.TrimSpace(it.EndDate) != "" {
		c.EndDate, _ = time.Parse(time.RFC3339Nano, it.EndDate)
	}
	return c
}
