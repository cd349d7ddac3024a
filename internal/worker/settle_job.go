package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BuildQueue_Go/internal/construction"
	"github.com/osse101/BuildQueue_Go/internal/logger"
)

// SettleJob runs one settle pass over the construction queue
type SettleJob struct {
	service construction.Service
	timeout time.Duration
}

// NewSettleJob creates a settle job; a non-positive timeout uses the default
func NewSettleJob(service construction.Service, timeout time.Duration) *SettleJob {
	if timeout <= 0 {
		timeout = DefaultSettleTimeout
	}
	return &SettleJob{service: service, timeout: timeout}
}

// Process settles every finished request
func (j *SettleJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	completions, err := j.service.Settle(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", LogMsgSettleFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgSettlePass, "completed", len(completions))
	return nil
}
