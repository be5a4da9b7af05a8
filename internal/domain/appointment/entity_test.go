//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"taller-api/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T) appointment.TimeSlot {
	t.Helper()
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	slot, err := appointment.NewTimeSlot(start, start.Add(time.Hour))
	require.NoError(t, err)
	return slot
}

func mustTitle(t *testing.T, s string) appointment.Title {
	t.Helper()
	title, err := appointment.NewTitle(s)
	require.NoError(t, err)
	return title
}

func TestNewAppointment(t *testing.T) {
	t.Run("new slots are always AVAILABLE and unowned", func(t *testing.T) {
		a := appointment.NewAppointment(mustTitle(t, "Oil change"), mustSlot(t), nil)

		assert.Equal(t, appointment.StatusAvailable, a.Status())
		assert.Nil(t, a.OwnerUserID())
		assert.True(t, a.IsAvailable())
		assert.Zero(t, a.ID())
	})
}

func TestReserve(t *testing.T) {
	userID := uuid.New()

	t.Run("reserving an open slot records the owner", func(t *testing.T) {
		a := appointment.NewAppointment(mustTitle(t, "Oil change"), mustSlot(t), nil)

		err := a.Reserve(userID)
		require.NoError(t, err)

		assert.Equal(t, appointment.StatusReserved, a.Status())
		require.NotNil(t, a.OwnerUserID())
		assert.Equal(t, userID, *a.OwnerUserID())
	})

	t.Run("only AVAILABLE slots may be reserved", func(t *testing.T) {
		for _, status := range []appointment.Status{
			appointment.StatusReserved,
			appointment.StatusCompleted,
		} {
			t.Run(status.String(), func(t *testing.T) {
				owner := uuid.New()
				a := appointment.ReconstructAppointment(
					1, mustTitle(t, "Oil change"), mustSlot(t), nil,
					status, &owner, time.Now(), time.Now(),
				)

				err := a.Reserve(userID)
				assert.ErrorIs(t, err, appointment.ErrNotAvailable)
				assert.Equal(t, status, a.Status())
				assert.Equal(t, owner, *a.OwnerUserID())
			})
		}
	})
}

func TestApplyAdminUpdate(t *testing.T) {
	t.Run("replaces the editable fields", func(t *testing.T) {
		a := appointment.NewAppointment(mustTitle(t, "Oil change"), mustSlot(t), nil)
		desc := "bring the service book"
		newStart := time.Date(2026, 9, 16, 14, 0, 0, 0, time.UTC)
		newSlot, err := appointment.NewTimeSlot(newStart, newStart.Add(30*time.Minute))
		require.NoError(t, err)

		a.ApplyAdminUpdate(mustTitle(t, "Brake inspection"), newSlot, &desc, appointment.StatusCompleted)

		assert.Equal(t, "Brake inspection", a.Title().Value())
		assert.Equal(t, newStart, a.Slot().Start())
		assert.Equal(t, appointment.StatusCompleted, a.Status())
		require.NotNil(t, a.Description())
		assert.Equal(t, desc, *a.Description())
	})

	t.Run("moving a slot back to AVAILABLE releases the owner", func(t *testing.T) {
		owner := uuid.New()
		a := appointment.ReconstructAppointment(
			1, mustTitle(t, "Oil change"), mustSlot(t), nil,
			appointment.StatusReserved, &owner, time.Now(), time.Now(),
		)

		a.ApplyAdminUpdate(a.Title(), a.Slot(), nil, appointment.StatusAvailable)

		assert.Equal(t, appointment.StatusAvailable, a.Status())
		assert.Nil(t, a.OwnerUserID())
	})

	t.Run("owner survives a non-AVAILABLE update", func(t *testing.T) {
		owner := uuid.New()
		a := appointment.ReconstructAppointment(
			1, mustTitle(t, "Oil change"), mustSlot(t), nil,
			appointment.StatusReserved, &owner, time.Now(), time.Now(),
		)

		a.ApplyAdminUpdate(a.Title(), a.Slot(), nil, appointment.StatusCompleted)

		assert.Equal(t, appointment.StatusCompleted, a.Status())
		require.NotNil(t, a.OwnerUserID())
		assert.Equal(t, owner, *a.OwnerUserID())
	})
}

func TestTimeSlot(t *testing.T) {
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "start before end", start: start, end: start.Add(time.Minute)},
		{name: "start equals end", start: start, end: start, errIs: appointment.ErrInvalidTimeSlot},
		{name: "start after end", start: start.Add(time.Hour), end: start, errIs: appointment.ErrInvalidTimeSlot},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := appointment.NewTimeSlot(tc.start, tc.end)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, slot.Start())
			assert.Equal(t, tc.end, slot.End())
		})
	}
}

func TestTitle(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain title", input: "Oil change", want: "Oil change"},
		{name: "surrounding whitespace is trimmed", input: "  Oil change  ", want: "Oil change"},
		{name: "empty title", input: "", errIs: appointment.ErrEmptyTitle},
		{name: "whitespace only title", input: "   ", errIs: appointment.ErrEmptyTitle},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			title, err := appointment.NewTitle(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, title.Value())
		})
	}
}

func TestStatus(t *testing.T) {
	for _, valid := range []string{"AVAILABLE", "RESERVED", "COMPLETED"} {
		status, err := appointment.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, status.String())
	}

	for _, invalid := range []string{"", "available", "PENDING", "CANCELLED"} {
		_, err := appointment.NewStatus(invalid)
		assert.ErrorIs(t, err, appointment.ErrInvalidStatus, invalid)
	}
}
