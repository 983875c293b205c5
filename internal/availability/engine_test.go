package availability

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

// 2025-06-02 is a Monday
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

type fakeStore struct {
	hours          map[string][]*domain.WorkingHoursWindow
	periods        map[string][]*domain.UnavailabilityPeriod
	bookings       map[string][]*domain.Booking
	staffByService map[int64][]int64
	hoursCalls     map[int64]int
	err            error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hours:          map[string][]*domain.WorkingHoursWindow{},
		periods:        map[string][]*domain.UnavailabilityPeriod{},
		bookings:       map[string][]*domain.Booking{},
		staffByService: map[int64][]int64{},
		hoursCalls:     map[int64]int{},
	}
}

func dayKey(staffID int64, day int) string {
	return fmt.Sprintf("%d/%d", staffID, day)
}

func dateKey(staffID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", staffID, date.Format(domain.DateFormat))
}

func (f *fakeStore) GetByStaffAndDay(_ context.Context, staffID int64, dayOfWeek int) ([]*domain.WorkingHoursWindow, error) {
	f.hoursCalls[staffID]++
	if f.err != nil {
		return nil, f.err
	}
	return f.hours[dayKey(staffID, dayOfWeek)], nil
}

func (f *fakeStore) GetByStaffAndDate(_ context.Context, staffID int64, date time.Time) ([]*domain.UnavailabilityPeriod, error) {
	return f.periods[dateKey(staffID, date)], nil
}

func (f *fakeStore) GetActiveByStaffAndDate(_ context.Context, staffID int64, date time.Time) ([]*domain.Booking, error) {
	return f.bookings[dateKey(staffID, date)], nil
}

func (f *fakeStore) GetStaffIDsForService(_ context.Context, serviceID int64) ([]int64, error) {
	return f.staffByService[serviceID], nil
}

func (f *fakeStore) addWindow(staffID int64, day int, start, end string) {
	key := dayKey(staffID, day)
	f.hours[key] = append(f.hours[key], &domain.WorkingHoursWindow{
		StaffID:   staffID,
		DayOfWeek: day,
		StartTime: types.MustTimeString(start),
		EndTime:   types.MustTimeString(end),
	})
}

func (f *fakeStore) addBooking(staffID int64, date time.Time, start, end string, status domain.BookingStatus) {
	key := dateKey(staffID, date)
	f.bookings[key] = append(f.bookings[key], &domain.Booking{
		StaffID:   staffID,
		Date:      date,
		StartTime: types.MustTimeString(start),
		EndTime:   types.MustTimeString(end),
		Status:    status,
	})
}

func (f *fakeStore) addPeriod(staffID int64, date time.Time, start, end *types.TimeString) {
	key := dateKey(staffID, date)
	f.periods[key] = append(f.periods[key], &domain.UnavailabilityPeriod{
		StaffID:   staffID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	})
}

func newEngine(f *fakeStore) *Engine {
	return NewEngine(f, f, f, f)
}

func tsPtr(s string) *types.TimeString {
	t := types.MustTimeString(s)
	return &t
}

func at(hhmm string) time.Time {
	return Combine(monday, types.MustTimeString(hhmm))
}

func haircut() *domain.Service {
	return &domain.Service{ID: 1, Name: "Coupe femme", DurationMinutes: 45}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", Interval{at("09:00"), at("09:30")}, Interval{at("10:00"), at("10:30")}, false},
		{"touching", Interval{at("09:15"), at("10:00")}, Interval{at("10:00"), at("10:45")}, false},
		{"partial", Interval{at("09:30"), at("10:15")}, Interval{at("10:00"), at("10:45")}, true},
		{"contained", Interval{at("10:10"), at("10:20")}, Interval{at("10:00"), at("10:45")}, true},
		{"identical", Interval{at("10:00"), at("10:45")}, Interval{at("10:00"), at("10:45")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestStepWindow(t *testing.T) {
	seq := StepWindow(at("09:00"), at("19:00"), 45*time.Minute)

	var got []time.Time
	for s := range seq {
		got = append(got, s)
	}
	require.NotEmpty(t, got)
	assert.Equal(t, at("09:00"), got[0])
	assert.Equal(t, at("18:15"), got[len(got)-1])
	assert.Len(t, got, 38)

	// restartable
	count := 0
	for range seq {
		count++
	}
	assert.Equal(t, len(got), count)

	// early stop
	var first []time.Time
	for s := range seq {
		first = append(first, s)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []time.Time{at("09:00"), at("09:15")}, first)
}

func TestStepWindow_DurationLongerThanWindow(t *testing.T) {
	for range StepWindow(at("09:00"), at("09:30"), 45*time.Minute) {
		t.Fatal("no candidate expected")
	}
	for range StepWindow(at("09:00"), at("09:30"), 0) {
		t.Fatal("no candidate expected for zero duration")
	}
}

func TestUpcoming(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00", "11:00"}

	assert.Equal(t, slots, Upcoming(slots, monday, monday.AddDate(0, 0, -1)))
	assert.Empty(t, Upcoming(slots, monday, monday.AddDate(0, 0, 1)))

	assert.Equal(t, []types.TimeString{"11:00"}, Upcoming(slots, monday, at("10:00")))
	assert.Empty(t, Upcoming(slots, monday, at("20:00")))
}

func TestBlockedIntervals(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", EndTime: "10:45", Status: domain.StatusConfirmed},
		{StartTime: "10:30", EndTime: "11:00", Status: domain.StatusPending},
		{StartTime: "14:00", EndTime: "15:00", Status: domain.StatusCancelled},
	}
	periods := []*domain.UnavailabilityPeriod{
		{StartTime: tsPtr("12:00"), EndTime: tsPtr("13:00")},
	}

	blocks := BlockedIntervals(monday, bookings, periods)
	assert.False(t, blocks.IsWholeDay())
	// overlapping bookings are kept apart, cancelled one is dropped
	assert.Len(t, blocks.Intervals(), 3)
	assert.False(t, blocks.Blocks(Interval{at("14:00"), at("15:00")}))
	assert.True(t, blocks.Blocks(Interval{at("12:30"), at("12:45")}))

	periods = append(periods, &domain.UnavailabilityPeriod{StartTime: tsPtr("08:00")})
	blocks = BlockedIntervals(monday, bookings, periods)
	assert.True(t, blocks.IsWholeDay())
	assert.Empty(t, blocks.Intervals())
	assert.True(t, blocks.Blocks(Interval{at("20:00"), at("20:15")}))
}

func TestGenerateSlots_FreeDay(t *testing.T) {
	store := newFakeStore()
	store.addWindow(7, 0, "09:00", "19:00")

	slots, err := newEngine(store).GenerateSlots(context.Background(), haircut(), 7, monday)
	require.NoError(t, err)

	require.Len(t, slots, 38)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:15"), slots[1])
	assert.Equal(t, types.TimeString("18:15"), slots[len(slots)-1])
	assert.NotContains(t, slots, types.TimeString("18:30"))
}

func TestGenerateSlots_AroundBooking(t *testing.T) {
	store := newFakeStore()
	store.addWindow(7, 0, "09:00", "19:00")
	store.addBooking(7, monday, "10:00", "10:45", domain.StatusConfirmed)

	slots, err := newEngine(store).GenerateSlots(context.Background(), haircut(), 7, monday)
	require.NoError(t, err)

	assert.Contains(t, slots, types.TimeString("09:15"))
	assert.NotContains(t, slots, types.TimeString("09:30"))
	assert.NotContains(t, slots, types.TimeString("10:00"))
	assert.NotContains(t, slots, types.TimeString("10:30"))
	assert.Contains(t, slots, types.TimeString("10:45"))
}

func TestGenerateSlots_OverlappingWindowsDeduplicated(t *testing.T) {
	store := newFakeStore()
	store.addWindow(7, 0, "09:00", "12:00")
	store.addWindow(7, 0, "11:00", "13:00")

	slots, err := newEngine(store).GenerateSlots(context.Background(), haircut(), 7, monday)
	require.NoError(t, err)

	count := 0
	for _, s := range slots {
		if s == "11:00" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.True(t, slices.IsSorted(slots))
	assert.Equal(t, types.TimeString("12:15"), slots[len(slots)-1])
}

func TestGenerateSlots_WholeDayBlocked(t *testing.T) {
	store := newFakeStore()
	store.addWindow(7, 0, "09:00", "19:00")
	store.addPeriod(7, monday, nil, nil)

	slots, err := newEngine(store).GenerateSlots(context.Background(), haircut(), 7, monday)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_NoWorkingHours(t *testing.T) {
	store := newFakeStore()
	store.addWindow(7, 1, "09:00", "19:00") // tuesday only

	slots, err := newEngine(store).GenerateSlots(context.Background(), haircut(), 7, monday)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_SundayIsSix(t *testing.T) {
	store := newFakeStore()
	store.addWindow(7, 6, "10:00", "11:00")
	sunday := monday.AddDate(0, 0, 6)

	slots, err := newEngine(store).GenerateSlots(context.Background(), haircut(), 7, sunday)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:15"}, slots)
}

func TestGenerateSlots_Invariants(t *testing.T) {
	store := newFakeStore()
	store.addWindow(7, 0, "09:00", "12:30")
	store.addWindow(7, 0, "14:00", "18:00")
	store.addBooking(7, monday, "09:40", "10:20", domain.StatusPending)
	store.addBooking(7, monday, "15:00", "16:00", domain.StatusConfirmed)
	store.addPeriod(7, monday, tsPtr("16:30"), tsPtr("17:00"))

	engine := newEngine(store)
	service := haircut()

	slots, err := engine.GenerateSlots(context.Background(), service, 7, monday)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	again, err := engine.GenerateSlots(context.Background(), service, 7, monday)
	require.NoError(t, err)
	assert.Equal(t, slots, again)

	blocks, err := engine.Blocked(context.Background(), 7, monday)
	require.NoError(t, err)

	for _, s := range slots {
		candidate := Interval{Start: Combine(monday, s), End: Combine(monday, s).Add(service.Duration())}
		assert.False(t, blocks.Blocks(candidate), "slot %s overlaps a block", s)

		fits := false
		for _, w := range store.hours[dayKey(7, 0)] {
			window := IntervalOf(monday, w.StartTime, w.EndTime)
			if !candidate.Start.Before(window.Start) && !candidate.End.After(window.End) {
				fits = true
			}
		}
		assert.True(t, fits, "slot %s is outside every window", s)
	}
}

func TestGenerateSlots_Errors(t *testing.T) {
	store := newFakeStore()
	engine := newEngine(store)

	_, err := engine.GenerateSlots(context.Background(), &domain.Service{ID: 2}, 7, monday)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	store.err = errors.New("connection reset")
	_, err = engine.GenerateSlots(context.Background(), haircut(), 7, monday)
	assert.ErrorIs(t, err, ErrRead)
}

func TestAnyStaffSlots_UnionOfQualifiedStaff(t *testing.T) {
	store := newFakeStore()
	store.staffByService[1] = []int64{1, 2}
	store.addWindow(2, 0, "14:00", "15:00")

	engine := newEngine(store)

	union, err := engine.AnyStaffSlots(context.Background(), haircut(), monday)
	require.NoError(t, err)

	only, err := engine.GenerateSlots(context.Background(), haircut(), 2, monday)
	require.NoError(t, err)

	assert.Equal(t, only, union)
	assert.Equal(t, []types.TimeString{"14:00", "14:15"}, union)
}

func TestAnyStaffSlots_MergesAndSorts(t *testing.T) {
	store := newFakeStore()
	store.staffByService[1] = []int64{1, 2}
	store.addWindow(1, 0, "10:00", "11:00")
	store.addWindow(2, 0, "09:30", "10:30")

	slots, err := newEngine(store).AnyStaffSlots(context.Background(), haircut(), monday)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:30", "09:45", "10:00", "10:15"}, slots)
}

func TestAvailableDays(t *testing.T) {
	store := newFakeStore()
	store.staffByService[1] = []int64{1, 2}
	store.addWindow(1, 0, "09:00", "19:00") // monday
	store.addWindow(2, 0, "09:00", "19:00") // monday
	store.addWindow(2, 2, "09:00", "10:00") // wednesday
	store.addPeriod(2, monday.AddDate(0, 0, 7+2), nil, nil)

	engine := newEngine(store)
	days, err := engine.AvailableDays(context.Background(), haircut(), nil, monday, monday.AddDate(0, 0, 13))
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		monday,
		monday.AddDate(0, 0, 2),
		monday.AddDate(0, 0, 7),
	}, days)

	// staff 1 answers for both mondays, staff 2 is never asked on a monday
	assert.Equal(t, 14, store.hoursCalls[1])
	assert.Equal(t, 12, store.hoursCalls[2])
}

func TestAvailableDays_SingleStaffAndRange(t *testing.T) {
	store := newFakeStore()
	store.addWindow(2, 2, "09:00", "10:00")

	engine := newEngine(store)

	days, err := engine.AvailableDays(context.Background(), haircut(), []int64{2}, monday, monday.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{monday.AddDate(0, 0, 2)}, days)

	days, err = engine.AvailableDays(context.Background(), haircut(), []int64{2}, monday, monday)
	require.NoError(t, err)
	assert.Empty(t, days)

	_, err = engine.AvailableDays(context.Background(), haircut(), []int64{2}, monday.AddDate(0, 0, 1), monday)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestHasConflict(t *testing.T) {
	store := newFakeStore()
	store.addBooking(7, monday, "10:00", "10:45", domain.StatusConfirmed)
	store.addBooking(7, monday, "12:00", "13:00", domain.StatusCancelled)
	engine := newEngine(store)

	backToBack := Interval{Start: at("10:45"), End: at("11:30")}
	conflict, err := engine.HasConflict(context.Background(), 7, monday, backToBack)
	require.NoError(t, err)
	assert.False(t, conflict)

	oneMinuteEarly := Interval{Start: at("10:44"), End: at("11:29")}
	conflict, err = engine.HasConflict(context.Background(), 7, monday, oneMinuteEarly)
	require.NoError(t, err)
	assert.True(t, conflict)

	overCancelled := Interval{Start: at("12:00"), End: at("12:45")}
	conflict, err = engine.HasConflict(context.Background(), 7, monday, overCancelled)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestFitsWorkingHours(t *testing.T) {
	store := newFakeStore()
	store.addWindow(7, 0, "09:00", "12:00")
	store.addWindow(7, 0, "14:00", "18:00")
	store.addPeriod(7, monday, tsPtr("15:00"), tsPtr("16:00"))
	engine := newEngine(store)

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"inside morning", "11:15", "12:00", true},
		{"spans lunch", "11:30", "14:15", false},
		{"before opening", "08:45", "09:30", false},
		{"hits unavailability", "14:30", "15:15", false},
		{"after unavailability", "16:00", "16:45", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := engine.FitsWorkingHours(context.Background(), 7, monday, Interval{at(tt.start), at(tt.end)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
