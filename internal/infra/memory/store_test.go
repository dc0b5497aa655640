package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/domain/client"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

func seed(t *testing.T, s *Store) (models.Client, models.Service) {
	t.Helper()
	ctx := context.Background()

	c := models.Client{FirstName: "Ana", LastName: "Ruiz", Phone: "88112233", Email: "ana@x.com"}
	require.NoError(t, s.Clients().Create(ctx, &c))

	svc := models.Service{Name: "Manicure", Description: "Manicure completo", Price: decimal.NewFromInt(8000), DurationMinutes: 45, Category: "Uñas", Active: true}
	require.NoError(t, s.Services().Create(ctx, &svc))
	return c, svc
}

func TestClients_UniqueEmail(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	first, _ := seed(t, s)

	dup := models.Client{FirstName: "Otra", LastName: "Ruiz", Phone: "88112234", Email: "ana@x.com"}
	err := s.Clients().Create(ctx, &dup)
	assert.True(t, httperr.IsKind(err, httperr.KindConstraint))
	assert.Zero(t, dup.ID)

	// Case-sensitive, as the unique index.
	other := models.Client{FirstName: "Otra", LastName: "Ruiz", Phone: "88112234", Email: "ANA@x.com"}
	require.NoError(t, s.Clients().Create(ctx, &other))

	other.Email = first.Email
	assert.True(t, httperr.IsKind(s.Clients().Update(ctx, &other), httperr.KindConstraint))
}

func TestAppointments_ReferencesAndRestrict(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c, svc := seed(t, s)

	t.Run("Create_UnknownService_ReferenceError", func(t *testing.T) {
		ap := models.Appointment{ClientID: c.ID, ServiceID: 999, Date: time.Now(), Time: "09:00"}
		err := s.Appointments().Create(ctx, &ap)
		be, ok := httperr.As(err)
		require.True(t, ok)
		assert.Equal(t, httperr.KindReference, be.Kind)
		assert.Contains(t, be.Fields, "ServicioId")
	})

	ap := models.Appointment{ClientID: c.ID, ServiceID: svc.ID, Date: time.Now(), Time: "09:00", Status: string(appointment.StatusPending)}
	require.NoError(t, s.Appointments().Create(ctx, &ap))

	t.Run("DeleteReferencedService_Conflict", func(t *testing.T) {
		assert.True(t, httperr.IsKind(s.Services().Delete(ctx, svc.ID), httperr.KindConflict))
		_, err := s.Services().GetByID(ctx, svc.ID)
		assert.NoError(t, err)
	})

	t.Run("DeleteReferencedClient_Conflict", func(t *testing.T) {
		assert.True(t, httperr.IsKind(s.Clients().Delete(ctx, c.ID), httperr.KindConflict))
	})

	t.Run("DeleteAppointmentThenService_Succeeds", func(t *testing.T) {
		require.NoError(t, s.Appointments().Delete(ctx, ap.ID))
		require.NoError(t, s.Services().Delete(ctx, svc.ID))
		assert.True(t, httperr.IsKind(s.Services().Delete(ctx, svc.ID), httperr.KindNotFound))
	})
}

func TestClients_SearchNameOrPhone(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s)

	found, err := s.Clients().SearchNameOrPhone(ctx, "an")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = s.Clients().SearchNameOrPhone(ctx, "1122")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	// Last name does not take part in this search.
	found, err = s.Clients().SearchNameOrPhone(ctx, "Ruiz")
	require.NoError(t, err)
	assert.Empty(t, found)

	listed, err := s.Clients().List(ctx, client.Filter{Search: "ruiz"})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestProducts_AdjustStockBounds(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	p := models.Product{Name: "Tinte", Price: decimal.NewFromInt(3000), Stock: 3, MinStock: 5}
	require.NoError(t, s.Products().Create(ctx, &p))

	got, err := s.Products().AdjustStock(ctx, p.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)

	_, err = s.Products().AdjustStock(ctx, p.ID, -1)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	_, err = s.Products().AdjustStock(ctx, 42, 1)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestAuditLogs_PagedNewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.AuditLogs().CreateAuditLog(ctx, &models.AuditLog{Action: audit.ActionCreate, Entity: "cliente"}))
	}
	require.NoError(t, s.AuditLogs().CreateAuditLog(ctx, &models.AuditLog{Action: audit.ActionDelete, Entity: "cita"}))

	logs, total, err := s.AuditLogs().ListAuditLogs(ctx, audit.Filter{Entity: "cliente", Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, logs, 2)
	assert.Equal(t, uint(3), logs[0].ID)
}
