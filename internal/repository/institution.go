package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/brunoqueiroz/curricula-admin/gen/ent"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institution"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
	"github.com/brunoqueiroz/curricula-admin/internal/entity"
)

// InstitutionFields wraps parameters for creating or updating an institution.
type InstitutionFields struct {
	Name       string
	TypeID     *uuid.UUID
	City       string
	Country    string
	PostalCode string
}

type InstitutionRepository interface {
	List(ctx context.Context, includeDeleted bool) ([]*entity.Institution, error)
	Create(ctx context.Context, fields InstitutionFields) (*entity.Institution, error)
	Update(ctx context.Context, id uuid.UUID, fields InstitutionFields) (*entity.Institution, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

type institutionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInstitutionRepository(client *ent.Client, logger *slog.Logger) InstitutionRepository {
	return &institutionRepository{client: client, logger: logger}
}

func (r *institutionRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.Institution, error) {
	q := r.client.Institution.Query().WithInstitutionType()
	if !includeDeleted {
		q = q.Where(institution.Deleted(false))
	}
	recs, err := q.Order(institution.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list institutions", "error", err)
		return nil, err
	}
	result := make([]*entity.Institution, len(recs))
	for i, rec := range recs {
		result[i] = toInstitution(rec)
	}
	return result, nil
}

func (r *institutionRepository) Create(ctx context.Context, fields InstitutionFields) (*entity.Institution, error) {
	if strings.TrimSpace(fields.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	builder := r.client.Institution.Create().
		SetName(strings.TrimSpace(fields.Name)).
		SetNillableTypeID(fields.TypeID)
	if fields.City != "" {
		builder = builder.SetCity(fields.City)
	}
	if fields.Country != "" {
		builder = builder.SetCountry(fields.Country)
	}
	if fields.PostalCode != "" {
		builder = builder.SetPostalCode(fields.PostalCode)
	}
	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, mapEntError(err, "institution")
	}
	return toInstitution(rec), nil
}

func (r *institutionRepository) Update(ctx context.Context, id uuid.UUID, fields InstitutionFields) (*entity.Institution, error) {
	if strings.TrimSpace(fields.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	cur, err := r.client.Institution.Get(ctx, id)
	if err != nil {
		return nil, mapEntError(err, "institution")
	}
	if cur.Deleted {
		return nil, fmt.Errorf("%w: cannot edit a deleted record", common.ErrValidation)
	}
	builder := r.client.Institution.UpdateOneID(id).
		SetName(strings.TrimSpace(fields.Name))
	if fields.TypeID != nil {
		builder = builder.SetTypeID(*fields.TypeID)
	} else {
		builder = builder.ClearTypeID()
	}
	if fields.City != "" {
		builder = builder.SetCity(fields.City)
	} else {
		builder = builder.ClearCity()
	}
	if fields.Country != "" {
		builder = builder.SetCountry(fields.Country)
	} else {
		builder = builder.ClearCountry()
	}
	if fields.PostalCode != "" {
		builder = builder.SetPostalCode(fields.PostalCode)
	} else {
		builder = builder.ClearPostalCode()
	}
	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, mapEntError(err, "institution")
	}
	return toInstitution(rec), nil
}

func (r *institutionRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	cur, err := r.client.Institution.Get(ctx, id)
	if err != nil {
		return mapEntError(err, "institution")
	}
	if cur.Deleted {
		r.logger.Debug("institution already deleted", "id", id)
		return nil
	}
	if err := r.client.Institution.UpdateOneID(id).SetDeleted(true).Exec(ctx); err != nil {
		return mapEntError(err, "institution")
	}
	r.logger.Info("institution deleted", "id", id, "name", cur.Name)
	return nil
}

func (r *institutionRepository) Restore(ctx context.Context, id uuid.UUID) error {
	cur, err := r.client.Institution.Get(ctx, id)
	if err != nil {
		return mapEntError(err, "institution")
	}
	if !cur.Deleted {
		r.logger.Debug("institution already active", "id", id)
		return nil
	}
	if err := r.client.Institution.UpdateOneID(id).SetDeleted(false).Exec(ctx); err != nil {
		return mapEntError(err, "institution")
	}
	r.logger.Info("institution restored", "id", id, "name", cur.Name)
	return nil
}

func toInstitution(rec *ent.Institution) *entity.Institution {
	out := &entity.Institution{
		ID:        rec.ID,
		Name:      rec.Name,
		TypeID:    rec.TypeID,
		Deleted:   rec.Deleted,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.City != nil {
		out.City = *rec.City
	}
	if rec.Country != nil {
		out.Country = *rec.Country
	}
	if rec.PostalCode != nil {
		out.PostalCode = *rec.PostalCode
	}
	if t := rec.Edges.InstitutionType; t != nil {
		out.TypeName = t.Name
	}
	return out
}
