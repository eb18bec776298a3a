package repository

import (
	"context"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type workflowItem struct {
	RequestID    string `dynamodbav:"request_id"`
	ProviderID   string `dynamodbav:"provider_id"`
	Assigned     bool   `dynamodbav:"assigned"`
	AssignedAt   string `dynamodbav:"assigned_at,omitempty"`
	InProgress   bool   `dynamodbav:"in_progress"`
	InProgressAt string `dynamodbav:"in_progress_at,omitempty"`
	CheckedIn    bool   `dynamodbav:"checked_in"`
	CheckedInAt  string `dynamodbav:"checked_in_at,omitempty"`
	Completed    bool   `dynamodbav:"completed"`
	CompletedAt  string `dynamodbav:"completed_at,omitempty"`
	Version      int64  `dynamodbav:"version"`
}

// WorkflowDynamoRepository reads WorkflowStatus rows from DynamoDB.
//
// Table requirements:
//   - PK: request_id (string), SK: provider_id (string)
type WorkflowDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkflowRepository = (*WorkflowDynamoRepository)(nil)

func NewWorkflowDynamoRepository(ddb *dynamodb.Client) *WorkflowDynamoRepository {
	return &WorkflowDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKFLOWS_TABLE", defaultWorkflowsTableName),
	}
}

func (r *WorkflowDynamoRepository) Get(ctx context.Context, requestID, providerID string) (entities.WorkflowStatus, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            pairKey(requestID, providerID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkflowStatus{}, dependencyErr("get workflow", err)
	}
	if len(out.Item) == 0 {
		return entities.WorkflowStatus{}, nil
	}

	var it workflowItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkflowStatus{}, err
	}
	return fromWorkflowItem(it), nil
}

func toWorkflowItem(w entities.WorkflowStatus) workflowItem {
	return workflowItem{
		RequestID:    w.RequestID,
		ProviderID:   w.ProviderID,
		Assigned:     w.Assigned,
		AssignedAt:   formatTimePtr(w.AssignedAt),
		InProgress:   w.InProgress,
		InProgressAt: formatTimePtr(w.InProgressAt),
		CheckedIn:    w.CheckedIn,
		CheckedInAt:  formatTimePtr(w.CheckedInAt),
		Completed:    w.Completed,
		CompletedAt:  formatTimePtr(w.CompletedAt),
		Version:      w.Version,
	}
}

func fromWorkflowItem(it workflowItem) entities.WorkflowStatus {
	return entities.WorkflowStatus{
		RequestID:    it.RequestID,
		ProviderID:   it.ProviderID,
		Assigned:     it.Assigned,
		AssignedAt:   parseTimePtr(it.AssignedAt),
		InProgress:   it.InProgress,
		InProgressAt: parseTimePtr(it.InProgressAt),
		CheckedIn:    it.CheckedIn,
		CheckedInAt:  parseTimePtr(it.CheckedInAt),
		Completed:    it.Completed,
		CompletedAt:  parseTimePtr(it.CompletedAt),
		Version:      it.Version,
	}
}
