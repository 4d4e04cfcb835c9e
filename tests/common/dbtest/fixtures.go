//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"luxora-booking/internal/pkg/password"
	"luxora-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Conn is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can seed
// inside a test transaction as well.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultPassword is the password of every account created by CreateTestUser.
const DefaultPassword = "password123"

func CreateTestUser(t *testing.T, db Conn, email string) uuid.UUID {
	t.Helper()

	hash, err := password.NewHasher(bcrypt.MinCost).Hash(DefaultPassword)
	require.NoError(t, err)

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, "Test Guest", strings.ToLower(email), hash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", strings.ToLower(email)).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateRoomType(t *testing.T, db Conn, b *builder.RoomBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO room_types (id, name, description, price_cents, room_type, image_url,
		                        max_guests, amenities, total_units, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		row.ID, row.Name, row.Description, row.PriceCents, row.RoomType, row.ImageUrl,
		row.MaxGuests, row.Amenities, row.TotalUnits, row.Status, row.CreatedAt, row.UpdatedAt)
	require.NoError(t, err)

	return row.ID
}

func CreateBooking(t *testing.T, db Conn, b *builder.BookingBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, code, guest_name, guest_email, guest_phone, room_type_id, user_id,
		                      check_in, check_out, guests, price_per_night_cents, total_nights,
		                      total_price_cents, status, special_requests, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		row.ID, row.Code, row.GuestName, row.GuestEmail, row.GuestPhone, row.RoomTypeID, row.UserID,
		row.CheckIn, row.CheckOut, row.Guests, row.PricePerNightCents, row.TotalNights,
		row.TotalPriceCents, row.Status, row.SpecialRequests, row.CreatedAt, row.UpdatedAt)
	require.NoError(t, err)

	return row.ID
}

func BookingStatus(t *testing.T, db Conn, code string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE code = $1", code).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountBookings(t *testing.T, db Conn) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings").Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	truncateOnce sync.Once
	truncateStmt string
	truncateErr  error
)

// ResetDB empties every application table. The table list is read once
// per process; schema_migrations is kept.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
			SELECT quote_ident(tablename) FROM pg_tables
			WHERE schemaname = 'public' AND tablename <> 'schema_migrations'
			ORDER BY tablename`)
		if err != nil {
			truncateErr = err
			return
		}
		tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			truncateErr = err
			return
		}
		if len(tables) > 0 {
			truncateStmt = "TRUNCATE " + strings.Join(tables, ", ") + " CASCADE"
		}
	})
	if truncateErr != nil {
		return fmt.Errorf("failed to list tables: %w", truncateErr)
	}
	if truncateStmt == "" {
		return nil
	}
	_, err := pool.Exec(ctx, truncateStmt)
	return err
}
