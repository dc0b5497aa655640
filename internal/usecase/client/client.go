package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/client"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

const Entity = "cliente"

// ======================================================
// CREATE
// ======================================================

type CreateClient struct {
	repo  domain.Repository
	clock timezone.Clock
	audit audit.Recorder
}

func NewCreateClient(repo domain.Repository, clock timezone.Clock, audit audit.Recorder) *CreateClient {
	return &CreateClient{repo: repo, clock: clock, audit: audit}
}

func (uc *CreateClient) Execute(ctx context.Context, c *models.Client) (*models.Client, error) {
	now := uc.clock.Now()
	if err := domain.Validate(c, now); err != nil {
		return nil, err
	}

	// Fast-fail only; the unique index is the real guard.
	taken, err := uc.repo.EmailTaken(ctx, c.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.DuplicateEmail()
	}

	c.ID = 0
	c.RegisteredAt = now
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionCreate,
		Entity:    Entity,
		EntityID:  audit.ID(c.ID),
		RequestID: audit.RequestID(ctx),
	})
	return c, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateClient struct {
	repo  domain.Repository
	clock timezone.Clock
	audit audit.Recorder
}

func NewUpdateClient(repo domain.Repository, clock timezone.Clock, audit audit.Recorder) *UpdateClient {
	return &UpdateClient{repo: repo, clock: clock, audit: audit}
}

func (uc *UpdateClient) Execute(ctx context.Context, id uint, c *models.Client) (*models.Client, error) {
	if err := domain.Validate(c, uc.clock.Now()); err != nil {
		return nil, err
	}

	taken, err := uc.repo.EmailTaken(ctx, c.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.DuplicateEmail()
	}

	c.ID = id
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionUpdate,
		Entity:    Entity,
		EntityID:  audit.ID(id),
		RequestID: audit.RequestID(ctx),
	})
	return c, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteClient struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteClient(repo domain.Repository, audit audit.Recorder) *DeleteClient {
	return &DeleteClient{repo: repo, audit: audit}
}

// Execute refuses with a conflict while the client has appointments.
func (uc *DeleteClient) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionDelete,
		Entity:    Entity,
		EntityID:  audit.ID(id),
		RequestID: audit.RequestID(ctx),
	})
	return nil
}

// ======================================================
// QUERIES
// ======================================================

type QueryClients struct {
	repo domain.Repository
}

func NewQueryClients(repo domain.Repository) *QueryClients {
	return &QueryClients{repo: repo}
}

func (uc *QueryClients) Get(ctx context.Context, id uint) (*models.Client, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *QueryClients) List(ctx context.Context, f domain.Filter) ([]models.Client, error) {
	return uc.repo.List(ctx, f)
}

// Search needs a non-blank term and matches first name or phone.
func (uc *QueryClients) Search(ctx context.Context, term string) ([]models.Client, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, httperr.ErrValidation(map[string]string{
			"termino": "Debe proporcionar un termino de busqueda",
		})
	}
	return uc.repo.SearchNameOrPhone(ctx, term)
}
