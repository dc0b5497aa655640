package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-backoffice/internal/domain/client"
	"github.com/BruksfildServices01/salon-backoffice/internal/domain/product"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Constraint names come from the gorm index tags and the schema patches
// in internal/db.
var uniqueErrors = map[string]func() error{
	"idx_clients_email": client.DuplicateEmail,
	"idx_services_name": catalog.DuplicateName,
}

var referenceErrors = map[string]func() error{
	"fk_appointments_client":  appointment.UnknownClient,
	"fk_appointments_service": appointment.UnknownService,
	"fk_sales_client": func() error {
		return httperr.ErrReference("ClienteId", "El cliente no existe")
	},
}

var checkErrors = map[string]func() error{
	"chk_products_stock": product.StockOutOfRange,
	"chk_services_duration": func() error {
		return httperr.ErrValidation(map[string]string{
			"DuracionMinutos": "La duración debe estar entre 5 y 480 minutos",
		})
	},
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// translateWrite maps insert/update failures to business errors.
func translateWrite(op string, err error) error {
	if err == nil {
		return nil
	}

	if pgErr, ok := pgError(err); ok {
		switch pgErr.Code {
		case pgUniqueViolation:
			if mk, ok := uniqueErrors[pgErr.ConstraintName]; ok {
				return mk()
			}
			return httperr.ErrConstraint(fieldFromConstraint(pgErr.ConstraintName), "El valor ya está registrado")
		case pgForeignKeyViolation:
			if mk, ok := referenceErrors[pgErr.ConstraintName]; ok {
				return mk()
			}
			return httperr.ErrReference(fieldFromConstraint(pgErr.ConstraintName), "La referencia no existe")
		case pgCheckViolation:
			if mk, ok := checkErrors[pgErr.ConstraintName]; ok {
				return mk()
			}
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// translateDelete reports a restrict-on-delete failure as conflict.
func translateDelete(op string, err error, conflict string) error {
	if err == nil {
		return nil
	}
	if pgErr, ok := pgError(err); ok && pgErr.Code == pgForeignKeyViolation {
		return httperr.ErrConflict(conflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func translateRead(op string, err error, notFound func() error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound()
	}
	return fmt.Errorf("%s: %w", op, err)
}

// fieldFromConstraint turns "idx_clients_email" into "email".
func fieldFromConstraint(name string) string {
	if i := strings.LastIndex(name, "_"); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return name
}

// likePattern escapes LIKE metacharacters in term and wraps it in %.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
