package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hayzedd-A/appointment-booking/internal/domain"
	"github.com/Hayzedd-A/appointment-booking/internal/infra/cache"
	settingsRepo "github.com/Hayzedd-A/appointment-booking/internal/infra/storage/settings"
	"github.com/Hayzedd-A/appointment-booking/pkg/ptr"
	"github.com/Hayzedd-A/appointment-booking/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if filter.Date == nil {
		return f.appointments, nil
	}
	var out []*domain.Appointment
	for _, a := range f.appointments {
		if a.Date.Equal(*filter.Date) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings *domain.ScheduleSettings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.ScheduleSettings, error) {
	return f.settings, f.err
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingCache struct {
	deleted []string
}

func (c *recordingCache) Delete(_ context.Context, key string) error {
	c.deleted = append(c.deleted, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник 10:00 UTC
var testStart = time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)

func validCreateRequest() *Request {
	return &Request{
		Name:     "Jane Smith",
		Phone:    "+15550001122",
		Kind:     domain.KindVisit,
		Start:    testStart,
		Sessions: 1,
	}
}

func newTestEnv() (*UseCase, *fakeAppointmentRepo, *recordingCache) {
	apptRepo := &fakeAppointmentRepo{}
	stRepo := &fakeSettingsRepo{settings: domain.DefaultScheduleSettings()}
	slotsCache := &recordingCache{}
	uc := NewUseCase(apptRepo, stRepo, fakeTxManager{}, slotsCache, nopLogger{})
	return uc, apptRepo, slotsCache
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	uc, apptRepo, slotsCache := newTestEnv()

	resp, err := uc.Execute(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, 30, resp.DurationMinutes)
	require.Len(t, apptRepo.appointments, 1)

	// Кэш слотов на эту дату инвалидирован
	date := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{cache.SlotsKey(date)}, slotsCache.deleted)
}

func TestExecute_MultiSessionDuration(t *testing.T) {
	uc, _, _ := newTestEnv()

	req := validCreateRequest()
	req.Sessions = 3

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// Длительность фиксируется на момент создания: 3 сессии по 30 минут
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestExecute_SlotConflict(t *testing.T) {
	uc, _, _ := newTestEnv()

	_, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Та же дата и время - конфликт
	second := validCreateRequest()
	second.Name = "John Doe"
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_PartialOverlapConflict(t *testing.T) {
	uc, _, _ := newTestEnv()

	// Запись 10:00 на 2 сессии занимает 10:00-11:00
	first := validCreateRequest()
	first.Sessions = 2
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// 10:30 попадает внутрь занятого интервала
	second := validCreateRequest()
	second.Start = time.Date(2025, 10, 13, 10, 30, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SameTimeDifferentDayOK(t *testing.T) {
	uc, _, _ := newTestEnv()

	_, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Вторник, то же время - конфликта нет
	second := validCreateRequest()
	second.Start = time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), second)
	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	uc, apptRepo, _ := newTestEnv()

	_, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	apptRepo.appointments[0].Status = domain.StatusCancelled

	second := validCreateRequest()
	second.Name = "John Doe"
	_, err = uc.Execute(context.Background(), second)
	assert.NoError(t, err)
}

func TestExecute_NotWorkingDay(t *testing.T) {
	uc, _, _ := newTestEnv()

	req := validCreateRequest()
	req.Start = time.Date(2025, 10, 19, 10, 0, 0, 0, time.UTC) // воскресенье

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotWorkingDay)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc, _, _ := newTestEnv()

	req := validCreateRequest()
	req.Start = time.Date(2025, 10, 13, 17, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_SettingsNotConfigured(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	stRepo := &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}
	uc := NewUseCase(apptRepo, stRepo, fakeTxManager{}, &recordingCache{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrSettingsNotConfigured)
}

func TestExecute_AddressDroppedForVisit(t *testing.T) {
	uc, apptRepo, _ := newTestEnv()

	req := validCreateRequest()
	req.Address = ptr.Ptr("12 Main St")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// Адрес сохраняется только для выездных записей
	assert.Nil(t, resp.Address)
	assert.Nil(t, apptRepo.appointments[0].Address)
}
