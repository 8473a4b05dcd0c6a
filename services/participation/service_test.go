package participation

import (
	"testing"

	"club-portal/constants"
	"club-portal/database"
	bookingModel "club-portal/models/booking"
	clubModel "club-portal/models/club"
	participationModel "club-portal/models/participation"
	placeModel "club-portal/models/place"
	userModel "club-portal/models/user"
	eventService "club-portal/services/event"
	"club-portal/services/permission"
	"club-portal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	db      *gorm.DB
	svc     *Service
	events  *eventService.Service
	club    clubModel.Club
	room    placeModel.Place
	leader  types.Caller
	members []types.Caller
}

// newFixture seeds a club with one leader and three approved members.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	f := &fixture{db: db, svc: NewService(db), events: eventService.NewService(db)}

	leaderRow := userModel.User{StudentID: "6401001", FirstName: "Ana", LastName: "Klein", Email: "ana@u.edu", Role: constants.RoleLeader}
	require.NoError(t, db.Create(&leaderRow).Error)
	f.club = clubModel.Club{Title: "Chess Club", OwnerID: leaderRow.ID}
	require.NoError(t, db.Create(&f.club).Error)
	require.NoError(t, db.Create(&clubModel.Member{
		ClubID: f.club.ID, UserID: leaderRow.ID,
		Status: constants.MembershipApproved, Role: constants.RoleLeader,
	}).Error)
	f.leader = types.Caller{UserID: leaderRow.ID, StudentID: leaderRow.StudentID, Role: constants.RoleLeader}

	names := []struct{ sid, first, last, email string }{
		{"6401002", "Ben", "Okafor", "ben@u.edu"},
		{"6401003", "Cara", "Ito", "cara@u.edu"},
		{"6401004", "Dmitri", "Sayed", "dmitri@u.edu"},
	}
	for _, n := range names {
		row := userModel.User{StudentID: n.sid, FirstName: n.first, LastName: n.last, Email: n.email, Role: constants.RoleMember}
		require.NoError(t, db.Create(&row).Error)
		require.NoError(t, db.Create(&clubModel.Member{
			ClubID: f.club.ID, UserID: row.ID,
			Status: constants.MembershipApproved, Role: constants.RoleMember,
		}).Error)
		f.members = append(f.members, types.Caller{UserID: row.ID, StudentID: row.StudentID, Role: constants.RoleMember})
	}

	f.room = placeModel.Place{Name: "Room A"}
	require.NoError(t, db.Create(&f.room).Error)
	return f
}

func (f *fixture) event(t *testing.T, capacity *int) uint {
	t.Helper()
	slot := bookingModel.Booking{
		PlaceID: f.room.ID, StudentID: f.leader.StudentID,
		Name: "Club slot", Date: "2024-05-01", Time: "10:00-11:00",
	}
	require.NoError(t, f.db.Create(&slot).Error)

	row, _, err := f.events.Create(f.leader, eventService.CreateInput{
		ClubID: f.club.ID, BookingID: slot.ID, Title: "Orientation", Capacity: capacity,
	})
	require.NoError(t, err)
	return row.ID
}

func (f *fixture) row(t *testing.T, eventID uint, caller types.Caller) participationModel.Participation {
	t.Helper()
	var row participationModel.Participation
	require.NoError(t, f.db.Where("event_id = ? AND user_id = ?", eventID, caller.UserID).First(&row).Error)
	return row
}

func TestJoinIsIdempotent(t *testing.T) {
	f := newFixture(t)
	eventID := f.event(t, nil)

	require.NoError(t, f.svc.Join(f.members[0], eventID))
	require.NoError(t, f.svc.Join(f.members[0], eventID), "re-joining is a no-op, not an error")

	var count int64
	require.NoError(t, f.db.Model(&participationModel.Participation{}).
		Where("event_id = ?", eventID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "upsert must not duplicate the row")
	assert.Equal(t, constants.ParticipationJoined, f.row(t, eventID, f.members[0]).Status)
}

func TestJoinPermissionChecks(t *testing.T) {
	f := newFixture(t)
	eventID := f.event(t, nil)

	outsider := types.Caller{UserID: 9999, StudentID: "6409999", Role: constants.RoleMember}
	assert.ErrorIs(t, f.svc.Join(outsider, eventID), permission.ErrDenied,
		"non-members cannot join")

	assert.ErrorIs(t, f.svc.Join(f.leader, eventID), permission.ErrDenied,
		"organizers cannot participate in their own club's events")

	assert.ErrorIs(t, f.svc.Join(f.members[0], 9999), eventService.ErrEventNotFound)
}

func TestJoinRespectsEventState(t *testing.T) {
	f := newFixture(t)
	eventID := f.event(t, nil)

	_, err := f.events.ToggleRegistration(f.leader, eventID)
	require.NoError(t, err)
	assert.ErrorIs(t, f.svc.Join(f.members[0], eventID), ErrEventNotJoinable,
		"closed registration blocks joins")

	_, err = f.events.ToggleRegistration(f.leader, eventID)
	require.NoError(t, err)
	_, _, err = f.events.Cancel(f.leader, eventID)
	require.NoError(t, err)
	assert.ErrorIs(t, f.svc.Join(f.members[0], eventID), ErrEventNotJoinable,
		"canceled events are not joinable")
}

func TestCapacityEnforcement(t *testing.T) {
	f := newFixture(t)
	capacity := 2
	eventID := f.event(t, &capacity)

	require.NoError(t, f.svc.Join(f.members[0], eventID))
	require.NoError(t, f.svc.Join(f.members[1], eventID))
	assert.ErrorIs(t, f.svc.Join(f.members[2], eventID), ErrEventFull)

	// Marking one participant absent frees the slot: capacity counts only
	// joined and attended rows.
	require.NoError(t, f.svc.RecordAttendance(f.leader, eventID, f.members[0].UserID, false, 0))
	require.NoError(t, f.svc.Join(f.members[2], eventID))

	count, err := f.svc.ActiveCount(eventID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	// A participant holding a slot may re-join while the event is full.
	require.NoError(t, f.svc.Join(f.members[1], eventID))

	// An absent-marked participant gave up their slot and needs a free one.
	assert.ErrorIs(t, f.svc.Join(f.members[0], eventID), ErrEventFull)
}

func TestRecordAttendance(t *testing.T) {
	f := newFixture(t)
	eventID := f.event(t, nil)

	require.NoError(t, f.svc.Join(f.members[0], eventID))
	require.NoError(t, f.svc.RecordAttendance(f.leader, eventID, f.members[0].UserID, true, 5))
	row := f.row(t, eventID, f.members[0])
	assert.Equal(t, constants.ParticipationAttended, row.Status)
	assert.Equal(t, 5, row.Points)

	// Attendance is an override: it may create a row for a user who never
	// joined, and negative points clamp to zero.
	require.NoError(t, f.svc.RecordAttendance(f.leader, eventID, f.members[1].UserID, false, -3))
	row = f.row(t, eventID, f.members[1])
	assert.Equal(t, constants.ParticipationAbsent, row.Status)
	assert.Equal(t, 0, row.Points)

	assert.ErrorIs(t, f.svc.RecordAttendance(f.members[0], eventID, f.members[1].UserID, true, 1),
		permission.ErrDenied, "plain members cannot record attendance")
}
