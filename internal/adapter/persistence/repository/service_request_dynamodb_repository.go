package repository

import (
	"context"
	"sort"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type serviceRequestItem struct {
	ID                 string `dynamodbav:"id"`
	RequesterID        string `dynamodbav:"requester_id"`
	Category           string `dynamodbav:"category"`
	Subcategory        string `dynamodbav:"subcategory,omitempty"`
	Location           string `dynamodbav:"location,omitempty"`
	Title              string `dynamodbav:"title"`
	Description        string `dynamodbav:"description,omitempty"`
	Status             string `dynamodbav:"status"`
	AssignedProviderID string `dynamodbav:"assigned_provider_id,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	Version            int64  `dynamodbav:"version"`
}

// ServiceRequestDynamoRepository reads ServiceRequest entities from DynamoDB.
// Writes go through DynamoUnitOfWork.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
type ServiceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, dependencyErr("get service request", err)
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) ListByStatus(ctx context.Context, statuses ...entities.RequestStatus) ([]entities.ServiceRequest, error) {
	items := make([]entities.ServiceRequest, 0)
	for _, status := range statuses {
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(requestsStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, dependencyErr("list service requests", err)
			}
			for _, raw := range out.Items {
				var it serviceRequestItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				items = append(items, fromServiceRequestItem(it))
			}
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func toServiceRequestItem(r entities.ServiceRequest) serviceRequestItem {
	return serviceRequestItem{
		ID:                 r.ID,
		RequesterID:        r.RequesterID,
		Category:           r.Category,
		Subcategory:        r.Subcategory,
		Location:           r.Location,
		Title:              r.Title,
		Description:        r.Description,
		Status:             string(r.Status),
		AssignedProviderID: r.AssignedProviderID,
		CreatedAt:          formatTime(r.CreatedAt),
		UpdatedAt:          formatTime(r.UpdatedAt),
		Version:            r.Version,
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:                 it.ID,
		RequesterID:        it.RequesterID,
		Category:           it.Category,
		Subcategory:        it.Subcategory,
		Location:           it.Location,
		Title:              it.Title,
		Description:        it.Description,
		Status:             entities.RequestStatus(it.Status),
		AssignedProviderID: it.AssignedProviderID,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		Version:            it.Version,
	}
}
