package repository

import (
	"context"
	"fmt"
	"log"

	"engagement_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB caps a transaction at 100 actions.
const maxTransactItems = 100

// DynamoUnitOfWork commits a change set with TransactWriteItems.
//
// Every put is conditioned on the version the entity was loaded with:
//   - version 0: attribute_not_exists(<partition key>), the row must be new
//   - version n: version = n
//
// so a concurrent writer on any row cancels the whole transaction.
type DynamoUnitOfWork struct {
	ddb    *dynamodb.Client
	tables Tables
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb *dynamodb.Client) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{ddb: ddb, tables: TablesFromEnv()}
}

func (u *DynamoUnitOfWork) Commit(ctx context.Context, cs interfaces.ChangeSet) error {
	if cs.Len() == 0 {
		return nil
	}
	items, err := u.tables.transactItems(cs)
	if err != nil {
		return err
	}

	_, err = u.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		log.Printf("[unit-of-work][dynamodb] commit failed items=%d err=%v", len(items), err)
		return commitErr(err)
	}

	bumpVersions(cs)
	return nil
}

// transactItems builds one conditional put per entity in the change set.
func (t Tables) transactItems(cs interfaces.ChangeSet) ([]types.TransactWriteItem, error) {
	if cs.Len() > maxTransactItems {
		return nil, fmt.Errorf("change set of %d items exceeds the transaction limit of %d", cs.Len(), maxTransactItems)
	}

	items := make([]types.TransactWriteItem, 0, cs.Len())
	add := func(table, pk string, version int64, item any) error {
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return err
		}
		items = append(items, versionedPut(table, pk, version, av))
		return nil
	}

	for _, r := range cs.Requests {
		it := toServiceRequestItem(*r)
		it.Version++
		if err := add(t.ServiceRequests, "id", r.Version, it); err != nil {
			return nil, err
		}
	}
	for _, q := range cs.Quotes {
		it := toQuoteItem(*q)
		it.Version++
		if err := add(t.Quotes, "request_id", q.Version, it); err != nil {
			return nil, err
		}
	}
	for _, p := range cs.ProviderStatuses {
		it := toProviderStatusItem(*p)
		it.Version++
		if err := add(t.ProviderStatuses, "request_id", p.Version, it); err != nil {
			return nil, err
		}
	}
	for _, a := range cs.Agreements {
		it := toAgreementItem(*a)
		it.Version++
		if err := add(t.Agreements, "quote_id", a.Version, it); err != nil {
			return nil, err
		}
	}
	for _, w := range cs.Workflows {
		it := toWorkflowItem(*w)
		it.Version++
		if err := add(t.Workflows, "request_id", w.Version, it); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func versionedPut(table, pk string, loaded int64, item map[string]types.AttributeValue) types.TransactWriteItem {
	put := &types.Put{
		TableName: aws.String(table),
		Item:      item,
	}
	if loaded == 0 {
		put.ConditionExpression = aws.String("attribute_not_exists(#pk)")
		put.ExpressionAttributeNames = map[string]string{"#pk": pk}
	} else {
		put.ConditionExpression = aws.String("#version = :version")
		put.ExpressionAttributeNames = map[string]string{"#version": "version"}
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", loaded)},
		}
	}
	return types.TransactWriteItem{Put: put}
}

func bumpVersions(cs interfaces.ChangeSet) {
	for _, r := range cs.Requests {
		r.Version++
	}
	for _, q := range cs.Quotes {
		q.Version++
	}
	for _, p := range cs.ProviderStatuses {
		p.Version++
	}
	for _, a := range cs.Agreements {
		a.Version++
	}
	for _, w := range cs.Workflows {
		w.Version++
	}
}
