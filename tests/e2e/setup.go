//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"luxora-booking/cmd/bootstrap"
	"luxora-booking/cmd/bootstrap/components"
	"luxora-booking/internal/infra/db"
	"luxora-booking/internal/pkg/config"
	"luxora-booking/migrations"
	"luxora-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver for wait.ForSQL
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgImage    = "postgres:17"
	pgPort     = nat.Port("5432/tcp")
	pgUser     = "test"
	pgPassword = "testpass"

	containerStartTimeout = 3 * time.Minute
	appStartTimeout       = 30 * time.Second
)

// One container per test binary; every suite gets its own database inside it.
var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

type endpoint struct {
	host string
	port string
}

func (e endpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.host, e.port, database)
}

func postgresEndpoint(t *testing.T) endpoint {
	t.Helper()

	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), containerStartTimeout)
		defer cancel()

		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        pgImage,
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// durability is irrelevant for throwaway data
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return endpoint{host: host, port: port.Port()}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "luxora-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, containerErr, "failed to start PostgreSQL container")

	ctx := context.Background()
	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	return endpoint{host: host, port: port.Port()}
}

// createDatabase makes a fresh database for the calling suite and drops it on cleanup.
func createDatabase(t *testing.T, ep endpoint) string {
	t.Helper()

	name := "luxora_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	// the container may still be finishing its init scripts
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
		if err != nil {
			slog.Warn("cleanup connection failed", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})
	return name
}

func openMigratedPool(t *testing.T, cfg config.DBConfig) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(cleanup)

	applied, err := db.Migrate(ctx, pool, migrations.FS)
	require.NoError(t, err, "database migration failed")
	slog.Info("migrations applied", "database", cfg.DBName, "count", len(applied))
	return pool
}

// startApp runs the production fx graph with the test pool in place of DBModule.
func startApp(t *testing.T, cfg config.Config, pool *pgxpool.Pool) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, cfg.Booking),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), appStartTimeout)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	return router
}

// SharedSuite gives every e2e package a router over a migrated database.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	ep := postgresEndpoint(t)

	cfg := config.NewTestConfig()
	cfg.DB.Host = ep.host
	cfg.DB.Port = ep.port
	cfg.DB.User = pgUser
	cfg.DB.Password = pgPassword
	cfg.DB.DBName = createDatabase(t, ep)
	// concurrency tests need more than the default pool
	cfg.DB.MaxConns = 20

	s.Config = cfg
	s.DB = openMigratedPool(t, cfg.DB)
	s.Router = startApp(t, cfg, s.DB)
}

// Each subtest starts from empty tables.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}
