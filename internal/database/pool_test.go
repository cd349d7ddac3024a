package database

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/BuildQueue_Go/internal/testing/leaktest"
)

var (
	testDBConnString string
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireTestDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestNewPool_AppliesLimits(t *testing.T) {
	requireTestDB(t)

	pool, err := NewPool(context.Background(), testDBConnString, 1, 30*time.Second, 2*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	cfg := pool.Config()
	assert.Equal(t, int32(1), cfg.MaxConns)
	assert.Equal(t, int32(1), cfg.MinConns, "min connections are capped at the maximum")
	assert.Equal(t, 30*time.Second, cfg.MaxConnIdleTime)
	assert.Equal(t, 2*time.Minute, cfg.MaxConnLifetime)
}

// Many settle passes persisting at once must share a small pool without
// leaking connections or goroutines
func TestPool_ConcurrentStarWrites(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	pool, err := NewPool(ctx, testDBConnString, 3, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, Migrate(ctx, pool))
	_, err = pool.Exec(ctx, "TRUNCATE stars")
	require.NoError(t, err)

	checker := leaktest.NewGoroutineChecker(t)

	const writers = 12
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(pos int) {
			defer wg.Done()
			_, err := pool.Exec(ctx,
				"INSERT INTO stars (star_key, position, revision, snapshot) VALUES ($1, $2, 1, $3)",
				fmt.Sprintf("star-%02d", pos), pos, fmt.Sprintf(`{"key":"star-%02d"}`, pos))
			if err != nil {
				t.Errorf("writer %d failed: %v", pos, err)
			}
		}(i)
	}
	wg.Wait()

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM stars").Scan(&count))
	assert.Equal(t, writers, count)

	var first string
	require.NoError(t, pool.QueryRow(ctx, "SELECT star_key FROM stars ORDER BY position LIMIT 1").Scan(&first))
	assert.Equal(t, "star-00", first)

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "all connections are released")
	checker.Check(2, time.Second)
}

func TestPingChecker_TracksPoolLifecycle(t *testing.T) {
	requireTestDB(t)

	pool, err := NewPool(context.Background(), testDBConnString, 2, time.Minute, 5*time.Minute)
	require.NoError(t, err)

	checker := NewPingChecker(pool)
	assert.NoError(t, checker.CheckHealth(context.Background()))

	pool.Close()
	err = checker.CheckHealth(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToPingDatabase)
}

func TestMigrate_CreatesStarsTable(t *testing.T) {
	requireTestDB(t)

	ctx := context.Background()
	pool, err := NewPool(ctx, testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, Migrate(ctx, pool))
	// Second run is a no-op
	require.NoError(t, Migrate(ctx, pool))

	var exists bool
	err = pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'stars')").Scan(&exists)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://localhost:badport/db", 5, time.Minute, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

type fakePool struct {
	err    error
	closed bool
}

func (p *fakePool) Ping(ctx context.Context) error { return p.err }
func (p *fakePool) Close() { p.closed = true }

func TestPingChecker(t *testing.T) {
	ok := NewPingChecker(&fakePool{})
	assert.NoError(t, ok.CheckHealth(context.Background()))

	down := errors.New("connection refused")
	bad := NewPingChecker(&fakePool{err: down})
	err := bad.CheckHealth(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), ErrMsgFailedToPingDatabase)
}
