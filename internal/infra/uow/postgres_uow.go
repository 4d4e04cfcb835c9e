package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/domain/roomtype"
	"luxora-booking/internal/domain/user"
	"luxora-booking/internal/infra"
	"luxora-booking/internal/infra/readstore"
	"luxora-booking/internal/infra/repository"
	"luxora-booking/internal/infra/repository/converter"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/internal/pkg/errs"
	"luxora-booking/internal/pkg/pgconv"
	"luxora-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultMaxRetries = 3
	defaultBackoff    = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Writers that must serialize take row locks inside fn.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; attempt <= defaultMaxRetries; attempt++ {
		err = u.runOnce(ctx, options, fn)
		if err == nil || !isRetryableError(err) {
			return err
		}
		if attempt == defaultMaxRetries {
			break
		}

		waitTime := calculateBackoff(attempt, defaultBackoff)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	slog.Error("transaction failed after max retries",
		"attempts", defaultMaxRetries+1,
		"error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, q: u.q})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rollbackErr.Error())
	}
	return err
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	roomTypeRepo shared.RoomTypeRepository
	bookingRepo  shared.BookingRepository
	userRepo     shared.UserRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) RoomTypes() shared.RoomTypeRepository {
	if t.roomTypeRepo == nil {
		t.roomTypeRepo = repository.NewRoomTypeRepository(t.q, t.dbtx)
	}
	return t.roomTypeRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{q: t.q, dbtx: t.dbtx}
	}
	return t.commandReads
}

// commandReads serves write-side validation reads on the same connection
// (pool or transaction) as the surrounding command.
type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	bookingStore *readstore.BookingReadStore
	userStore    *readstore.UserReadStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) RoomTypeByID(ctx context.Context, id uuid.UUID) (*roomtype.RoomType, error) {
	row, err := r.q.GetRoomTypeByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by ID", err)
	}
	rt, err := converter.RoomTypeFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room type", err, infra.KindDBFailure)
	}
	return rt, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email user.Email) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.q, r.dbtx)
	}
	return r.userStore.FindByEmail(ctx, email.Value())
}

func (r *commandReads) BookingCodeExists(ctx context.Context, code string) (bool, error) {
	return r.bookings().CodeExists(ctx, code)
}

func (r *commandReads) CountOverlappingConfirmed(ctx context.Context, roomTypeID uuid.UUID, stay booking.Stay) (int, error) {
	return r.bookings().CountOverlappingConfirmed(ctx, roomTypeID, stay)
}
