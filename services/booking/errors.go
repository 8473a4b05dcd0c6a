package booking

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrSlotTaken reports an interval overlap with an existing booking for the
// same place and date. Controllers surface its message verbatim so the user
// learns the reason, not a generic failure.
var ErrSlotTaken = errors.New("the requested time slot is already booked for this place")

// Postgres SQLSTATE for a serializable-transaction abort.
const serializationFailureCode = "40001"

// mapStoreError folds the store-level outcomes of a lost booking race into
// ErrSlotTaken: a duplicate on the (place, date, time) unique index, or a
// serialization failure when a concurrent overlapping create committed
// first. Everything else passes through untouched.
func mapStoreError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || isSerializationFailure(err) {
		return ErrSlotTaken
	}
	return err
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == serializationFailureCode
}
