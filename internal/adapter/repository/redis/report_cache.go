package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/erpledger/internal/domain"
	"github.com/iho/erpledger/internal/usecase"
)

const latestReportKey = "reconciliation:latest"

// ReportCache implements usecase.ReportStore using Redis.
type ReportCache struct {
	client *redis.Client
	prefix string
}

// NewReportCache creates a new ReportCache.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{
		client: client,
		prefix: "report:",
	}
}

// Save stores the report, replacing the previous one.
func (c *ReportCache) Save(ctx context.Context, report *usecase.ReconciliationReport, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return c.client.Set(ctx, c.prefix+latestReportKey, data, ttl).Err()
}

// Latest loads the last stored report.
func (c *ReportCache) Latest(ctx context.Context) (*usecase.ReconciliationReport, error) {
	data, err := c.client.Get(ctx, c.prefix+latestReportKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrReportNotAvailable
		}

		return nil, err
	}

	var report usecase.ReconciliationReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	return &report, nil
}
