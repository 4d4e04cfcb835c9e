package shared

import (
	"context"

	"luxora-booking/internal/domain/booking"
	"luxora-booking/internal/domain/roomtype"
	"luxora-booking/internal/domain/user"
	sqlc "luxora-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	RoomTypes() RoomTypeRepository
	Bookings() BookingRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RoomTypeByID(ctx context.Context, id uuid.UUID) (*roomtype.RoomType, error)
	UserByEmail(ctx context.Context, email user.Email) (*UserSnapshot, error)
	BookingCodeExists(ctx context.Context, code string) (bool, error)
	// CountOverlappingConfirmed counts confirmed bookings of the room type
	// whose stay overlaps the given one.
	CountOverlappingConfirmed(ctx context.Context, roomTypeID uuid.UUID, stay booking.Stay) (int, error)
}

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *roomtype.RoomType) error
	Update(ctx context.Context, rt *roomtype.RoomType) error
	// LockActiveByLabel returns the first active room type with the label and
	// holds a row lock on it until the transaction ends.
	LockActiveByLabel(ctx context.Context, label string) (*roomtype.RoomType, error)
	LockByID(ctx context.Context, id uuid.UUID) (*roomtype.RoomType, error)
	Count(ctx context.Context) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	LockByCode(ctx context.Context, code string) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}
