package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/brunoqueiroz/curricula-admin/gen/ent"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institutiontype"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
	"github.com/brunoqueiroz/curricula-admin/internal/entity"
)

type InstitutionTypeRepository interface {
	List(ctx context.Context, includeDeleted bool) ([]*entity.InstitutionType, error)
	Create(ctx context.Context, name string) (*entity.InstitutionType, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*entity.InstitutionType, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

type institutionTypeRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInstitutionTypeRepository(client *ent.Client, logger *slog.Logger) InstitutionTypeRepository {
	return &institutionTypeRepository{client: client, logger: logger}
}

func (r *institutionTypeRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.InstitutionType, error) {
	q := r.client.InstitutionType.Query()
	if !includeDeleted {
		q = q.Where(institutiontype.Deleted(false))
	}
	recs, err := q.Order(institutiontype.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list institution types", "error", err)
		return nil, err
	}
	result := make([]*entity.InstitutionType, len(recs))
	for i, rec := range recs {
		result[i] = toInstitutionType(rec)
	}
	return result, nil
}

func (r *institutionTypeRepository) Create(ctx context.Context, name string) (*entity.InstitutionType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	rec, err := r.client.InstitutionType.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, mapEntError(err, "institution type")
	}
	return toInstitutionType(rec), nil
}

func (r *institutionTypeRepository) Update(ctx context.Context, id uuid.UUID, name string) (*entity.InstitutionType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	cur, err := r.client.InstitutionType.Get(ctx, id)
	if err != nil {
		return nil, mapEntError(err, "institution type")
	}
	if cur.Deleted {
		return nil, fmt.Errorf("%w: cannot edit a deleted record", common.ErrValidation)
	}
	rec, err := r.client.InstitutionType.UpdateOneID(id).
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, mapEntError(err, "institution type")
	}
	return toInstitutionType(rec), nil
}

func (r *institutionTypeRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	cur, err := r.client.InstitutionType.Get(ctx, id)
	if err != nil {
		return mapEntError(err, "institution type")
	}
	if cur.Deleted {
		r.logger.Debug("institution type already deleted", "id", id)
		return nil
	}
	if err := r.client.InstitutionType.UpdateOneID(id).SetDeleted(true).Exec(ctx); err != nil {
		return mapEntError(err, "institution type")
	}
	r.logger.Info("institution type deleted", "id", id, "name", cur.Name)
	return nil
}

func (r *institutionTypeRepository) Restore(ctx context.Context, id uuid.UUID) error {
	cur, err := r.client.InstitutionType.Get(ctx, id)
	if err != nil {
		return mapEntError(err, "institution type")
	}
	if !cur.Deleted {
		r.logger.Debug("institution type already active", "id", id)
		return nil
	}
	if err := r.client.InstitutionType.UpdateOneID(id).SetDeleted(false).Exec(ctx); err != nil {
		return mapEntError(err, "institution type")
	}
	r.logger.Info("institution type restored", "id", id, "name", cur.Name)
	return nil
}

func toInstitutionType(rec *ent.InstitutionType) *entity.InstitutionType {
	return &entity.InstitutionType{
		ID:      rec.ID,
		Name:    rec.Name,
		Deleted: rec.Deleted,
	}
}
