package booking

import (
	"fmt"
	"testing"
	"time"

	"club-portal/database"
	bookingModel "club-portal/models/booking"
	eventModel "club-portal/models/event"
	placeModel "club-portal/models/place"
	userModel "club-portal/models/user"
	"club-portal/services/timeslot"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedPlace(t *testing.T, db *gorm.DB, name string) placeModel.Place {
	t.Helper()
	row := placeModel.Place{Name: name}
	require.NoError(t, db.Create(&row).Error)
	return row
}

func TestCreateRejectsInvalidInterval(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)
	room := seedPlace(t, db, "Room A")

	_, err := svc.Create("6401001", CreateInput{
		PlaceID: room.ID, Date: "2024-05-01", TimeStart: "08:00", TimeEnd: "08:15", Name: "Rehearsal",
	})
	assert.ErrorIs(t, err, timeslot.ErrInvalidInterval)

	_, err = svc.Create("6401001", CreateInput{
		PlaceID: room.ID, Date: "01/05/2024", TimeStart: "08:00", TimeEnd: "09:00", Name: "Rehearsal",
	})
	assert.ErrorIs(t, err, timeslot.ErrInvalidInterval)
}

func TestCreateDetectsOverlap(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)
	room := seedPlace(t, db, "Room A")

	first, err := svc.Create("6401001", CreateInput{
		PlaceID: room.ID, Date: "2024-05-01", TimeStart: "10:00", TimeEnd: "11:00", Name: "Orientation",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00-11:00", first.Time)

	// Crossing interval
	_, err = svc.Create("6401002", CreateInput{
		PlaceID: room.ID, Date: "2024-05-01", TimeStart: "10:30", TimeEnd: "11:30", Name: "Practice",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Touching endpoint counts as a conflict under the inclusive rule
	_, err = svc.Create("6401002", CreateInput{
		PlaceID: room.ID, Date: "2024-05-01", TimeStart: "11:00", TimeEnd: "12:00", Name: "Practice",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// One grid step of clearance is fine
	_, err = svc.Create("6401002", CreateInput{
		PlaceID: room.ID, Date: "2024-05-01", TimeStart: "11:30", TimeEnd: "12:30", Name: "Practice",
	})
	assert.NoError(t, err)

	// Same interval, other place or other date: no conflict
	annex := seedPlace(t, db, "Annex Hall")
	_, err = svc.Create("6401002", CreateInput{
		PlaceID: annex.ID, Date: "2024-05-01", TimeStart: "10:00", TimeEnd: "11:00", Name: "Practice",
	})
	assert.NoError(t, err)
	_, err = svc.Create("6401002", CreateInput{
		PlaceID: room.ID, Date: "2024-05-02", TimeStart: "10:00", TimeEnd: "11:00", Name: "Practice",
	})
	assert.NoError(t, err)
}

func TestMapStoreError(t *testing.T) {
	// Both ways a lost concurrent create surfaces collapse into ErrSlotTaken:
	// the duplicate on the (place, date, time) index, and the serialization
	// abort when the winner's interval merely overlapped.
	assert.ErrorIs(t, mapStoreError(gorm.ErrDuplicatedKey), ErrSlotTaken)
	assert.ErrorIs(t, mapStoreError(fmt.Errorf("create: %w", gorm.ErrDuplicatedKey)), ErrSlotTaken)
	assert.ErrorIs(t,
		mapStoreError(fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40001"})),
		ErrSlotTaken)

	// Other store errors pass through untouched.
	deadlock := fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40P01"})
	assert.Equal(t, deadlock, mapStoreError(deadlock))
	assert.Equal(t, gorm.ErrInvalidData, mapStoreError(gorm.ErrInvalidData))
}

func TestDuplicateSlotHitsBackstopIndex(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)
	room := seedPlace(t, db, "Room A")

	_, err := svc.Create("6401001", CreateInput{
		PlaceID: room.ID, Date: "2024-05-01", TimeStart: "10:00", TimeEnd: "11:00", Name: "Orientation",
	})
	require.NoError(t, err)

	// An identical slot written past the conflict check lands on the unique
	// index, and the translated duplicate maps to the same user-facing error.
	dup := bookingModel.Booking{
		PlaceID: room.ID, StudentID: "6401002", Name: "Clone",
		Date: "2024-05-01", Time: "10:00-11:00",
	}
	err = db.Create(&dup).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, mapStoreError(err), ErrSlotTaken)
}

func TestCheckConflictIsPureRead(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)
	room := seedPlace(t, db, "Room A")

	_, err := svc.Create("6401001", CreateInput{
		PlaceID: room.ID, Date: "2024-05-01", TimeStart: "10:00", TimeEnd: "11:00", Name: "Orientation",
	})
	require.NoError(t, err)

	iv, err := timeslot.New("10:30", "11:30", svc.Window)
	require.NoError(t, err)
	conflict, hit, err := svc.CheckConflict(db, room.ID, "2024-05-01", iv)
	require.NoError(t, err)
	assert.True(t, conflict)
	require.NotNil(t, hit)
	assert.Equal(t, "Orientation", hit.Name)

	free, err := timeslot.New("12:00", "13:00", svc.Window)
	require.NoError(t, err)
	conflict, hit, err = svc.CheckConflict(db, room.ID, "2024-05-01", free)
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.Nil(t, hit)
}

func TestListAvailable(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)
	room := seedPlace(t, db, "Room A")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	early, err := svc.Create("6401001", CreateInput{
		PlaceID: room.ID, Date: tomorrow, TimeStart: "09:00", TimeEnd: "10:00", Name: "Early",
	})
	require.NoError(t, err)
	late, err := svc.Create("6401001", CreateInput{
		PlaceID: room.ID, Date: nextWeek, TimeStart: "08:00", TimeEnd: "09:00", Name: "Late",
	})
	require.NoError(t, err)
	consumed, err := svc.Create("6401001", CreateInput{
		PlaceID: room.ID, Date: nextWeek, TimeStart: "13:00", TimeEnd: "14:00", Name: "Consumed",
	})
	require.NoError(t, err)
	// Another requester's booking must not appear
	_, err = svc.Create("6401002", CreateInput{
		PlaceID: room.ID, Date: tomorrow, TimeStart: "11:00", TimeEnd: "12:00", Name: "Other",
	})
	require.NoError(t, err)

	// A past booking predates today and must be filtered out
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	require.NoError(t, db.Exec(
		"INSERT INTO bookings (place_id, student_id, name, date, time) VALUES (?, ?, ?, ?, ?)",
		room.ID, "6401001", "Past", yesterday, "10:00-11:00").Error)

	require.NoError(t, db.Create(&eventModel.Event{
		ClubID: 1, BookingID: consumed.ID, Title: "Taken",
		Date: consumed.Date, TimeStart: "13:00", TimeEnd: "14:00", PlaceName: room.Name,
		IsOpen: true,
	}).Error)

	rows, err := svc.ListAvailable("6401001")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, early.ID, rows[0].ID, "ordered by date then start time ascending")
	assert.Equal(t, late.ID, rows[1].ID)
}

func TestListAllJoinsNames(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db)
	room := seedPlace(t, db, "Room A")

	require.NoError(t, db.Create(&userModel.User{
		StudentID: "6401001", FirstName: "Ana", LastName: "Klein", Email: "ana@u.edu", Role: "leader",
	}).Error)

	_, err := svc.Create("6401001", CreateInput{
		PlaceID: room.ID, Date: "2024-05-01", TimeStart: "10:00", TimeEnd: "11:00", Name: "Orientation",
	})
	require.NoError(t, err)

	rows, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana Klein", rows[0].ReserverName)
	assert.Equal(t, "Room A", rows[0].PlaceName)
	assert.Equal(t, "10:00-11:00", rows[0].Time)
}
