package rediscache_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"driverhub/internal/adapters/out/rediscache"
	"driverhub/internal/core/application/usecases/queries"
	"driverhub/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// UnclaimedPoolCacheIntegrationTestSuite exercises the Redis-backed pool
// cache against a real Redis container.
type UnclaimedPoolCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
}

func (suite *UnclaimedPoolCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: endpoint})
}

func (suite *UnclaimedPoolCacheIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
}

func (suite *UnclaimedPoolCacheIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnclaimedPoolCacheIntegrationTestSuite) TestGet_EmptyCache_ReturnsMiss() {
	cache := rediscache.NewUnclaimedPoolCache(suite.client, time.Minute, slog.Default())

	views, ok := cache.Get(context.Background())
	suite.False(ok)
	suite.Nil(views)
}

func (suite *UnclaimedPoolCacheIntegrationTestSuite) TestSetAndGet_RoundTrip() {
	ctx := context.Background()
	cache := rediscache.NewUnclaimedPoolCache(suite.client, time.Minute, slog.Default())

	snapshot := []queries.UnclaimedOrderView{
		{
			ID:              kernel.NewUUID().Bytes(),
			ShopID:          kernel.NewUUID().Bytes(),
			CreatedAt:       time.Now().UTC().Truncate(time.Millisecond),
			TotalCents:      10000,
			CommissionCents: 1000,
			Address:         "12 Harbor St",
		},
		{
			ID:              kernel.NewUUID().Bytes(),
			ShopID:          kernel.NewUUID().Bytes(),
			CreatedAt:       time.Now().UTC().Truncate(time.Millisecond),
			TotalCents:      5000,
			CommissionCents: 500,
		},
	}

	cache.Set(ctx, snapshot)

	views, ok := cache.Get(ctx)
	suite.Require().True(ok)
	suite.Equal(snapshot, views)
}

func (suite *UnclaimedPoolCacheIntegrationTestSuite) TestSet_EmptyPool_IsCachedAsHit() {
	ctx := context.Background()
	cache := rediscache.NewUnclaimedPoolCache(suite.client, time.Minute, slog.Default())

	cache.Set(ctx, []queries.UnclaimedOrderView{})

	views, ok := cache.Get(ctx)
	suite.True(ok, "An empty pool is a valid snapshot, not a miss")
	suite.Empty(views)
}

func (suite *UnclaimedPoolCacheIntegrationTestSuite) TestGet_AfterTTL_ReturnsMiss() {
	ctx := context.Background()
	cache := rediscache.NewUnclaimedPoolCache(suite.client, 100*time.Millisecond, slog.Default())

	cache.Set(ctx, []queries.UnclaimedOrderView{{ID: kernel.NewUUID().Bytes()}})

	_, ok := cache.Get(ctx)
	suite.True(ok)

	time.Sleep(200 * time.Millisecond)

	_, ok = cache.Get(ctx)
	suite.False(ok, "The snapshot must expire with its TTL")
}

func (suite *UnclaimedPoolCacheIntegrationTestSuite) TestGet_UnreachableServer_ReturnsMiss() {
	deadClient := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer deadClient.Close()

	cache := rediscache.NewUnclaimedPoolCache(deadClient, time.Minute, slog.Default())

	views, ok := cache.Get(context.Background())
	suite.False(ok, "A cache failure must degrade to a miss")
	suite.Nil(views)

	// Set must swallow the failure as well.
	cache.Set(context.Background(), []queries.UnclaimedOrderView{})
}

func TestUnclaimedPoolCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnclaimedPoolCacheIntegrationTestSuite))
}
