package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"engagement_service/internal/adapter/persistence/repository"
	"engagement_service/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spf13/cobra"
)

// tableAPI is the subset of the DynamoDB client the commands use.
type tableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type rootOptions struct {
	timeout time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Manage the DynamoDB tables of the engagement service",
	}
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall timeout")

	cmd.AddCommand(newCreateCommand(opts))
	cmd.AddCommand(newDescribeCommand(opts))
	return cmd
}

func newCreateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "create",
		Short:        "Create missing tables",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			client, err := database.NewDynamoDBClient(ctx)
			if err != nil {
				return err
			}
			return createTables(ctx, client, repository.TablesFromEnv(), cmd.OutOrStdout())
		},
	}
}

func newDescribeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "describe",
		Short:        "Print the status of every table",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			client, err := database.NewDynamoDBClient(ctx)
			if err != nil {
				return err
			}
			return describeTables(ctx, client, repository.TablesFromEnv(), cmd.OutOrStdout())
		},
	}
}

// createTables creates every table in a stable order. Existing tables are skipped.
func createTables(ctx context.Context, api tableAPI, tables repository.Tables, out io.Writer) error {
	defs := tables.Definitions()
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		_, err := api.CreateTable(ctx, defs[name])
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			fmt.Fprintf(out, "created %s\n", name)
		case errors.As(err, &inUse):
			fmt.Fprintf(out, "exists  %s\n", name)
		default:
			return fmt.Errorf("create table %s: %w", name, err)
		}
	}
	return nil
}

func describeTables(ctx context.Context, api tableAPI, tables repository.Tables, out io.Writer) error {
	for _, name := range tables.Names() {
		res, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
		var notFound *types.ResourceNotFoundException
		switch {
		case errors.As(err, &notFound):
			fmt.Fprintf(out, "%-28s missing\n", name)
		case err != nil:
			return fmt.Errorf("describe table %s: %w", name, err)
		default:
			fmt.Fprintf(out, "%-28s %s items=%d\n", name, res.Table.TableStatus, aws.ToInt64(res.Table.ItemCount))
		}
	}
	return nil
}
