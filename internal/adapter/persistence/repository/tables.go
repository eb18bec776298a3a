package repository

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceRequestsTableName  = "service_requests"
	defaultQuotesTableName           = "quotes"
	defaultProviderStatusesTableName = "provider_request_statuses"
	defaultAgreementsTableName       = "agreements"
	defaultWorkflowsTableName        = "workflow_statuses"

	requestsStatusIndex      = "status-index"
	quotesIDIndex            = "id-index"
	providerStatusesProvider = "provider_id-index"
)

// Tables holds the DynamoDB table names of the engagement entities.
type Tables struct {
	ServiceRequests  string
	Quotes           string
	ProviderStatuses string
	Agreements       string
	Workflows        string
}

// TablesFromEnv reads the table names, falling back to the defaults.
func TablesFromEnv() Tables {
	return Tables{
		ServiceRequests:  getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
		Quotes:           getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		ProviderStatuses: getenvDefault("PROVIDER_STATUSES_TABLE", defaultProviderStatusesTableName),
		Agreements:       getenvDefault("AGREEMENTS_TABLE", defaultAgreementsTableName),
		Workflows:        getenvDefault("WORKFLOWS_TABLE", defaultWorkflowsTableName),
	}
}

func (t Tables) Names() []string {
	return []string{t.ServiceRequests, t.Quotes, t.ProviderStatuses, t.Agreements, t.Workflows}
}

// Definitions describes every table the repositories expect, keyed by table name.
//
//   - service_requests: PK id, GSI status-index (PK status)
//   - quotes: PK request_id, SK provider_id, GSI id-index (PK id)
//   - provider_request_statuses: PK request_id, SK provider_id, GSI provider_id-index (PK provider_id)
//   - agreements: PK quote_id
//   - workflow_statuses: PK request_id, SK provider_id
func (t Tables) Definitions() map[string]*dynamodb.CreateTableInput {
	return map[string]*dynamodb.CreateTableInput{
		t.ServiceRequests: {
			TableName:            aws.String(t.ServiceRequests),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: stringAttributes("id", "status"),
			KeySchema:            keySchema("id", ""),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				allProjection(requestsStatusIndex, "status"),
			},
		},
		t.Quotes: {
			TableName:            aws.String(t.Quotes),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: stringAttributes("request_id", "provider_id", "id"),
			KeySchema:            keySchema("request_id", "provider_id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				allProjection(quotesIDIndex, "id"),
			},
		},
		t.ProviderStatuses: {
			TableName:            aws.String(t.ProviderStatuses),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: stringAttributes("request_id", "provider_id"),
			KeySchema:            keySchema("request_id", "provider_id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				allProjection(providerStatusesProvider, "provider_id"),
			},
		},
		t.Agreements: {
			TableName:            aws.String(t.Agreements),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: stringAttributes("quote_id"),
			KeySchema:            keySchema("quote_id", ""),
		},
		t.Workflows: {
			TableName:            aws.String(t.Workflows),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: stringAttributes("request_id", "provider_id"),
			KeySchema:            keySchema("request_id", "provider_id"),
		},
	}
}

func stringAttributes(names ...string) []types.AttributeDefinition {
	out := make([]types.AttributeDefinition, 0, len(names))
	for _, n := range names {
		out = append(out, types.AttributeDefinition{
			AttributeName: aws.String(n),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	return out
}

func keySchema(hash, rng string) []types.KeySchemaElement {
	ks := []types.KeySchemaElement{{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash}}
	if rng != "" {
		ks = append(ks, types.KeySchemaElement{AttributeName: aws.String(rng), KeyType: types.KeyTypeRange})
	}
	return ks
}

func allProjection(name, hash string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(name),
		KeySchema:  keySchema(hash, ""),
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}
