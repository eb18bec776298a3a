package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"engagement_service/internal/adapter/persistence/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTableAPI struct {
	existing map[string]bool
	created  []string
	failOn   string
}

func (f *fakeTableAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	if name == f.failOn {
		return nil, errors.New("throttled")
	}
	if f.existing[name] {
		return nil, &types.ResourceInUseException{Message: aws.String("exists")}
	}
	f.created = append(f.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeTableAPI) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	name := aws.ToString(in.TableName)
	if !f.existing[name] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("missing")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
		ItemCount:   aws.Int64(3),
	}}, nil
}

func testTables() repository.Tables {
	return repository.Tables{
		ServiceRequests:  "service_requests",
		Quotes:           "quotes",
		ProviderStatuses: "provider_request_statuses",
		Agreements:       "agreements",
		Workflows:        "workflow_statuses",
	}
}

func TestCreateTables_SkipsExisting(t *testing.T) {
	api := &fakeTableAPI{existing: map[string]bool{"quotes": true}}
	var out bytes.Buffer

	err := createTables(context.Background(), api, testTables(), &out)

	require.NoError(t, err)
	assert.Equal(t, []string{"agreements", "provider_request_statuses", "service_requests", "workflow_statuses"}, api.created)
	assert.Contains(t, out.String(), "exists  quotes")
}

func TestCreateTables_StopsOnFailure(t *testing.T) {
	api := &fakeTableAPI{failOn: "provider_request_statuses"}

	err := createTables(context.Background(), api, testTables(), &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider_request_statuses")
	assert.Equal(t, []string{"agreements"}, api.created)
}

func TestDescribeTables(t *testing.T) {
	api := &fakeTableAPI{existing: map[string]bool{"service_requests": true}}
	var out bytes.Buffer

	require.NoError(t, describeTables(context.Background(), api, testTables(), &out))

	assert.Contains(t, out.String(), "service_requests")
	assert.Contains(t, out.String(), "ACTIVE items=3")
	assert.Contains(t, out.String(), "quotes")
	assert.Contains(t, out.String(), "missing")
}
