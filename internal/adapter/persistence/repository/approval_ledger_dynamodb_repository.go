package repository

import (
	"context"
	"sort"
	"time"

	"saude_conecta/internal/domain/entities"
	"saude_conecta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApprovalRecordsTableName = "approval_records"
	approvalRecordsContractIDIndex  = "contract_id-index"
)

type approvalRecordItem struct {
	ID               string `dynamodbav:"id"`
	ContractID       string `dynamodbav:"contract_id"`
	Step             string `dynamodbav:"step"`
	Action           string `dynamodbav:"action"`
	ActorID          string `dynamodbav:"actor_id,omitempty"`
	ActorRole        string `dynamodbav:"actor_role,omitempty"`
	Notes            string `dynamodbav:"notes"`
	SuggestedChanges string `dynamodbav:"suggested_changes,omitempty"`
	ResultingStatus  string `dynamodbav:"resulting_status"`
	ResultingVersion int64  `dynamodbav:"resulting_version"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// ApprovalLedgerDynamoRepository reads the append-only audit ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)
//
// Writes go exclusively through ContractDynamoRepository.CommitTransition
// so the ledger row and the status change share one transaction. This
// repository deliberately has no update or delete methods.

type ApprovalLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApprovalLedger = (*ApprovalLedgerDynamoRepository)(nil)

func NewApprovalLedgerDynamoRepository(ddb *dynamodb.Client) *ApprovalLedgerDynamoRepository {
	return &ApprovalLedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPROVAL_RECORDS_TABLE", defaultApprovalRecordsTableName),
	}
}

func (r *ApprovalLedgerDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.ApprovalRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(approvalRecordsContractIDIndex),
		KeyConditionExpression: aws.String("#cid = :cid"),
		ExpressionAttributeNames: map[string]string{
			"#cid": "contract_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.ApprovalRecord, 0, len(out.Items))
	for _, item := range out.Items {
		var it approvalRecordItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		records = append(records, fromApprovalRecordItem(it))
	}

	// GSI queries give no useful ordering; replaying the ledger needs
	// created_at ascending with resulting version as tie-break.
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ResultingVersion < records[j].ResultingVersion
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func toApprovalRecordItem(rec entities.ApprovalRecord) approvalRecordItem {
	return approvalRecordItem{
		ID:               rec.ID,
		ContractID:       rec.ContractID,
		Step:             string(rec.Step),
		Action:           string(rec.Action),
		ActorID:          rec.ActorID,
		ActorRole:        string(rec.ActorRole),
		Notes:            rec.Notes,
		SuggestedChanges: rec.SuggestedChanges,
		ResultingStatus:  string(rec.ResultingStatus),
		ResultingVersion: rec.ResultingVersion,
		CreatedAt:        rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromApprovalRecordItem(it approvalRecordItem) entities.ApprovalRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ApprovalRecord{
		ID:               it.ID,
		ContractID:       it.ContractID,
		Step:             entities.ApprovalStep(it.Step),
		Action:           entities.ApprovalAction(it.Action),
		ActorID:          it.ActorID,
		ActorRole:        entities.Role(it.ActorRole),
		Notes:            it.Notes,
		SuggestedChanges: it.SuggestedChanges,
		ResultingStatus:  entities.ContractStatus(it.ResultingStatus),
		ResultingVersion: it.ResultingVersion,
		CreatedAt:        createdAt,
	}
}
