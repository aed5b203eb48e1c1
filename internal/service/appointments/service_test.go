package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	"github.com/Hayzedd-A/appointment-booking/internal/infra/cache"
	apptRepo "github.com/Hayzedd-A/appointment-booking/internal/infra/storage/appointment"
	"github.com/Hayzedd-A/appointment-booking/internal/service/appointments/models"
	getAvailableSlots "github.com/Hayzedd-A/appointment-booking/internal/usecase/get_available_slots"
	"github.com/Hayzedd-A/appointment-booking/pkg/ptr"
	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
}

func newFakeRepo(appointments ...*domain.Appointment) *fakeRepo {
	f := &fakeRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, a := range appointments {
		f.appointments[a.ID] = a
	}
	return f
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range f.appointments {
		if filter.Date != nil && !a.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeInactive && !a.IsActive() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	appt.UpdatedAt = time.Now()
	return nil
}

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) Get(_ context.Context) (*domain.ScheduleSettings, error) {
	return domain.DefaultScheduleSettings(), nil
}

// memCache минимальный кэш в памяти, общий для сервиса и usecase слотов
type memCache struct {
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	c.deleted = append(c.deleted, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник
var testDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func testAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		Name:            "Jane Smith",
		Phone:           "+15550001122",
		Kind:            domain.KindVisit,
		Date:            testDate,
		StartTime:       types.TimeString("10:00"),
		Sessions:        1,
		DurationMinutes: 30,
		Status:          status,
	}
}

func newTestService(repo *fakeRepo) (*Service, *memCache) {
	c := newMemCache()
	return NewService(repo, c, nopLogger{}), c
}

func TestList_IncludesCancelled(t *testing.T) {
	repo := newFakeRepo(
		testAppointment(1, domain.StatusPending),
		testAppointment(2, domain.StatusCancelled),
	)
	svc, _ := newTestService(repo)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{IncludeInactive: true})

	require.NoError(t, err)
	// Админ видит полную историю, включая отменённые записи
	assert.Len(t, resp.Appointments, 2)
}

func TestList_ExcludesCancelledWhenInactiveFilteredOut(t *testing.T) {
	repo := newFakeRepo(
		testAppointment(1, domain.StatusPending),
		testAppointment(2, domain.StatusCancelled),
	)
	svc, _ := newTestService(repo)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{IncludeInactive: false})

	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "pending", resp.Appointments[0].Status)
}

func TestList_StatusFilter(t *testing.T) {
	repo := newFakeRepo(
		testAppointment(1, domain.StatusPending),
		testAppointment(2, domain.StatusCompleted),
	)
	svc, _ := newTestService(repo)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status:          ptr.Ptr("completed"),
		IncludeInactive: true,
	})

	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "completed", resp.Appointments[0].Status)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("confirmed"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusPending))
	svc, _ := newTestService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})

	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, domain.StatusCompleted, repo.appointments[1].Status)
}

func TestUpdateStatus_FreeTransitions(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusCompleted))
	svc, _ := newTestService(repo)

	// Переходы не ограничены: завершённую запись можно вернуть в pending
	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "pending"})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusPending))
	svc, slotsCache := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, domain.StatusPending, repo.appointments[1].Status)
	assert.Empty(t, slotsCache.deleted)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	_, err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "cancelled"})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_InvalidatesSlotsCache(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusPending))
	svc, slotsCache := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})

	require.NoError(t, err)
	assert.Equal(t, []string{cache.SlotsKey(testDate)}, slotsCache.deleted)
}

func TestUpdateStatus_CancelledSlotReappearsInAvailability(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusPending))
	slotsCache := newMemCache()
	svc := NewService(repo, slotsCache, nopLogger{})
	uc := getAvailableSlots.NewUseCase(repo, fakeSettingsRepo{}, slotsCache, time.Minute, nopLogger{})

	// Первый запрос кэширует доступность без занятого слота
	first, err := uc.Execute(context.Background(), &getAvailableSlots.Request{Date: testDate})
	require.NoError(t, err)
	assert.NotContains(t, first.AvailableSlots, types.TimeString("10:00"))

	_, err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	// Отмена освободила слот: закэшированный ответ не должен его прятать
	second, err := uc.Execute(context.Background(), &getAvailableSlots.Request{Date: testDate})
	require.NoError(t, err)
	assert.Contains(t, second.AvailableSlots, types.TimeString("10:00"))
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestFromDomainAppointment_StartDateTime(t *testing.T) {
	appt := testAppointment(1, domain.StatusPending)

	resp := models.FromDomainAppointment(appt)

	// Дата и время суток склеиваются в единый момент времени
	assert.Equal(t, time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC), resp.StartDateTime)
}
