package worker

import "time"

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolStopped     = "Worker pool stopped"
)

// Log messages for the settle job
const (
	LogMsgSettlePass   = "Settle pass finished"
	LogMsgSettleFailed = "Settle pass failed"
)

// DefaultSettleTimeout bounds one settle pass
const DefaultSettleTimeout = 5 * time.Second

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
