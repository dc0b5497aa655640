package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/infra/memory"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

type spyRecorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *spyRecorder) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

type fixture struct {
	store   *memory.Store
	clock   timezone.FixedClock
	spy     *spyRecorder
	client  models.Client
	service models.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc := timezone.Location("America/Costa_Rica")
	f := &fixture{
		store: memory.NewStore(),
		clock: timezone.FixedClock{At: time.Date(2026, 3, 10, 15, 0, 0, 0, loc), Loc: loc},
		spy:   &spyRecorder{},
	}

	ctx := context.Background()
	f.client = models.Client{FirstName: "Ana", LastName: "Ruiz", Phone: "88112233", Email: "ana@x.com"}
	require.NoError(t, f.store.Clients().Create(ctx, &f.client))
	f.service = models.Service{Name: "Pedicure", Description: "Pedicure spa completo", Price: decimal.NewFromInt(9000), DurationMinutes: 60, Category: "Uñas", Active: true}
	require.NoError(t, f.store.Services().Create(ctx, &f.service))
	return f
}

func (f *fixture) create() *CreateAppointment {
	repo := f.store.Appointments()
	return NewCreateAppointment(repo, repo, f.clock, f.spy)
}

func (f *fixture) input(date, hm string) domain.Input {
	return domain.Input{ClientID: f.client.ID, ServiceID: f.service.ID, Date: date, Time: hm, Notes: "primera visita"}
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid_PendingWithCreationTime", func(t *testing.T) {
		f := newFixture(t)
		ap, err := f.create().Execute(ctx, f.input("2026-03-12", "10:30"))
		require.NoError(t, err)

		assert.NotZero(t, ap.ID)
		assert.Equal(t, string(domain.StatusPending), ap.Status)
		assert.True(t, f.clock.Now().Equal(ap.CreatedAt))

		got, err := f.store.Appointments().GetByID(ctx, ap.ID)
		require.NoError(t, err)
		assert.Equal(t, f.client.ID, got.ClientID)
		assert.Equal(t, f.service.ID, got.ServiceID)
		assert.Equal(t, "2026-03-12", timezone.FormatDate(got.Date))
		assert.Equal(t, "10:30", got.Time)
		assert.Equal(t, "primera visita", got.Notes)

		require.Len(t, f.spy.events, 1)
		assert.Equal(t, audit.ActionCreate, f.spy.events[0].Action)
	})

	t.Run("UnknownService_ReferenceErrorNothingWritten", func(t *testing.T) {
		f := newFixture(t)
		in := f.input("2026-03-12", "10:30")
		in.ServiceID = 999

		_, err := f.create().Execute(ctx, in)
		be, ok := httperr.As(err)
		require.True(t, ok)
		assert.Equal(t, httperr.KindReference, be.Kind)
		assert.Contains(t, be.Fields, "ServicioId")

		all, err := f.store.Appointments().List(ctx, domain.Filter{})
		require.NoError(t, err)
		assert.Empty(t, all)
		assert.Empty(t, f.spy.events)
	})

	t.Run("UnknownClient_ReferenceError", func(t *testing.T) {
		f := newFixture(t)
		in := f.input("2026-03-12", "10:30")
		in.ClientID = 999

		_, err := f.create().Execute(ctx, in)
		be, ok := httperr.As(err)
		require.True(t, ok)
		assert.Contains(t, be.Fields, "ClienteId")
	})

	t.Run("MissingTime_ValidationError", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.create().Execute(ctx, f.input("2026-03-12", ""))
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})

	t.Run("SameSlotTwice_Allowed", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.create().Execute(ctx, f.input("2026-03-12", "10:30"))
		require.NoError(t, err)
		_, err = f.create().Execute(ctx, f.input("2026-03-12", "10:30"))
		require.NoError(t, err)
	})
}

func TestCompleteAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing_NotFound", func(t *testing.T) {
		f := newFixture(t)
		_, err := NewCompleteAppointment(f.store.Appointments(), f.spy).Execute(ctx, 404)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})

	t.Run("AnyStatus_EndsCompleted", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCompleteAppointment(f.store.Appointments(), f.spy)

		for _, st := range []string{"Pendiente", "Confirmada", "Completada", "Cancelada"} {
			in := f.input("2026-03-12", "09:00")
			in.Status = st
			ap, err := f.create().Execute(ctx, in)
			require.NoError(t, err)

			_, err = uc.Execute(ctx, ap.ID)
			require.NoError(t, err, st)

			got, err := f.store.Appointments().GetByID(ctx, ap.ID)
			require.NoError(t, err)
			assert.Equal(t, string(domain.StatusCompleted), got.Status, st)
		}
	})
}

func TestUpdateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("FullReplace", func(t *testing.T) {
		f := newFixture(t)
		ap, err := f.create().Execute(ctx, f.input("2026-03-12", "10:30"))
		require.NoError(t, err)

		other := models.Service{Name: "Masaje relajante", Description: "Masaje de cuerpo completo", Price: decimal.NewFromInt(9500), DurationMinutes: 90, Category: "Masajes", Active: true}
		require.NoError(t, f.store.Services().Create(ctx, &other))

		in := domain.Input{ClientID: f.client.ID, ServiceID: other.ID, Date: "2026-03-13", Time: "16:00:00", Status: "Confirmada"}
		got, err := NewUpdateAppointment(f.store.Appointments(), f.clock, f.spy).Execute(ctx, ap.ID, in)
		require.NoError(t, err)

		assert.Equal(t, other.ID, got.ServiceID)
		assert.Equal(t, "2026-03-13", timezone.FormatDate(got.Date))
		assert.Equal(t, "16:00", got.Time)
		assert.Equal(t, string(domain.StatusConfirmed), got.Status)
		assert.Empty(t, got.Notes)
	})

	t.Run("Missing_NotFound", func(t *testing.T) {
		f := newFixture(t)
		_, err := NewUpdateAppointment(f.store.Appointments(), f.clock, f.spy).Execute(ctx, 77, f.input("2026-03-12", "10:30"))
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})

	t.Run("FromTerminal_Refused", func(t *testing.T) {
		f := newFixture(t)
		in := f.input("2026-03-12", "10:30")
		in.Status = "Cancelada"
		ap, err := f.create().Execute(ctx, in)
		require.NoError(t, err)

		in.Status = "Pendiente"
		_, err = NewUpdateAppointment(f.store.Appointments(), f.clock, f.spy).Execute(ctx, ap.ID, in)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

		got, err := f.store.Appointments().GetByID(ctx, ap.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cancelada", got.Status)
	})

	t.Run("EmptyStatus_KeepsCurrent", func(t *testing.T) {
		f := newFixture(t)
		in := f.input("2026-03-12", "10:30")
		in.Status = "Confirmada"
		ap, err := f.create().Execute(ctx, in)
		require.NoError(t, err)

		in.Status = ""
		got, err := NewUpdateAppointment(f.store.Appointments(), f.clock, f.spy).Execute(ctx, ap.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "Confirmada", got.Status)
	})
}

func TestConfirmAndCancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	repo := f.store.Appointments()

	ap, err := f.create().Execute(ctx, f.input("2026-03-12", "10:30"))
	require.NoError(t, err)

	confirmed, err := NewConfirmAppointment(repo, f.spy).Execute(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "Confirmada", confirmed.Status)

	_, err = NewConfirmAppointment(repo, f.spy).Execute(ctx, ap.ID)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))

	cancelled, err := NewCancelAppointment(repo, f.spy).Execute(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cancelada", cancelled.Status)

	_, err = NewCancelAppointment(repo, f.spy).Execute(ctx, ap.ID)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))
}

func TestToday_MatchesSalonDateOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, in := range []domain.Input{
		f.input("2026-03-10", "00:00"),
		f.input("2026-03-10", "23:59"),
		f.input("2026-03-11", "08:00"),
		f.input("2026-03-09", "23:59"),
	} {
		_, err := f.create().Execute(ctx, in)
		require.NoError(t, err)
	}

	got, err := NewListAppointments(f.store.Appointments(), f.clock).Today(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "00:00", got[0].Time)
	assert.Equal(t, "23:59", got[1].Time)
}

func TestDeleteAppointment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewDeleteAppointment(f.store.Appointments(), f.spy)

	ap, err := f.create().Execute(ctx, f.input("2026-03-12", "10:30"))
	require.NoError(t, err)

	require.NoError(t, uc.Execute(ctx, ap.ID))
	assert.True(t, httperr.IsKind(uc.Execute(ctx, ap.ID), httperr.KindNotFound))
}

func TestAgenda_NamesResolved(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.create().Execute(ctx, f.input("2026-03-10", "11:00"))
	require.NoError(t, err)

	entries, err := NewListAppointments(f.store.Appointments(), f.clock).Agenda(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ana Ruiz", entries[0].ClientName)
	assert.Equal(t, "Pedicure", entries[0].ServiceName)
	assert.Equal(t, 60, entries[0].DurationMinutes)
}
