package repository

import (
	"errors"
	"fmt"
	"os"
	"time"

	"engagement_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return nil
	}
	return &t
}

// dependencyErr classifies an SDK failure for the use cases.
func dependencyErr(op string, err error) error {
	return fmt.Errorf("dynamodb %s: %w: %w", op, entities.ErrDependencyFailure, err)
}

// commitErr maps a failed transaction. A cancelled transaction caused by a
// condition or a concurrent transaction is a version conflict.
func commitErr(err error) error {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code == nil {
				continue
			}
			switch *reason.Code {
			case "ConditionalCheckFailed", "TransactionConflict":
				return fmt.Errorf("dynamodb commit: %w: %w", entities.ErrConflict, err)
			}
		}
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return fmt.Errorf("dynamodb commit: %w: %w", entities.ErrConflict, err)
	}
	return dependencyErr("commit", err)
}
