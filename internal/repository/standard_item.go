package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/brunoqueiroz/curricula-admin/gen/ent"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/standarditem"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
	"github.com/brunoqueiroz/curricula-admin/internal/entity"
	"github.com/brunoqueiroz/curricula-admin/internal/llm"
)

// StandardItemFields wraps parameters for creating or updating a curriculum
// standard through the manual form.
type StandardItemFields struct {
	Code         string
	Subject      string
	Description  string
	GradeLevel   string
	ThematicUnit string
}

type StandardItemRepository interface {
	List(ctx context.Context, includeDeleted bool) ([]*entity.StandardItem, error)
	Create(ctx context.Context, fields StandardItemFields) (*entity.StandardItem, error)
	Update(ctx context.Context, id uuid.UUID, fields StandardItemFields) (*entity.StandardItem, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error

	// CreateFromCandidate persists one reviewed extraction candidate as a new
	// row. Duplicated codes stay duplicated: commit never merges by key.
	CreateFromCandidate(ctx context.Context, fields llm.StandardFields) (*entity.StandardItem, error)
}

type standardItemRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStandardItemRepository(client *ent.Client, logger *slog.Logger) StandardItemRepository {
	return &standardItemRepository{client: client, logger: logger}
}

func (r *standardItemRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.StandardItem, error) {
	q := r.client.StandardItem.Query()
	if !includeDeleted {
		q = q.Where(standarditem.Deleted(false))
	}
	recs, err := q.
		Order(standarditem.ByCode(), standarditem.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list curriculum standards", "error", err)
		return nil, err
	}

	result := make([]*entity.StandardItem, len(recs))
	for i, rec := range recs {
		result[i] = toStandardItem(rec)
	}
	return result, nil
}

func (r *standardItemRepository) Create(ctx context.Context, fields StandardItemFields) (*entity.StandardItem, error) {
	if err := validateStandardFields(fields); err != nil {
		return nil, err
	}
	rec, err := r.client.StandardItem.Create().
		SetCode(strings.ToUpper(strings.TrimSpace(fields.Code))).
		SetSubject(strings.TrimSpace(fields.Subject)).
		SetDescription(strings.TrimSpace(fields.Description)).
		SetGradeLevel(strings.TrimSpace(fields.GradeLevel)).
		SetThematicUnit(strings.TrimSpace(fields.ThematicUnit)).
		Save(ctx)
	if err != nil {
		return nil, mapEntError(err, "curriculum standard")
	}
	return toStandardItem(rec), nil
}

func (r *standardItemRepository) Update(ctx context.Context, id uuid.UUID, fields StandardItemFields) (*entity.StandardItem, error) {
	if err := validateStandardFields(fields); err != nil {
		return nil, err
	}
	cur, err := r.client.StandardItem.Get(ctx, id)
	if err != nil {
		return nil, mapEntError(err, "curriculum standard")
	}
	if cur.Deleted {
		return nil, fmt.Errorf("%w: cannot edit a deleted record", common.ErrValidation)
	}
	rec, err := r.client.StandardItem.UpdateOneID(id).
		SetCode(strings.ToUpper(strings.TrimSpace(fields.Code))).
		SetSubject(strings.TrimSpace(fields.Subject)).
		SetDescription(strings.TrimSpace(fields.Description)).
		SetGradeLevel(strings.TrimSpace(fields.GradeLevel)).
		SetThematicUnit(strings.TrimSpace(fields.ThematicUnit)).
		Save(ctx)
	if err != nil {
		return nil, mapEntError(err, "curriculum standard")
	}
	return toStandardItem(rec), nil
}

func (r *standardItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	cur, err := r.client.StandardItem.Get(ctx, id)
	if err != nil {
		return mapEntError(err, "curriculum standard")
	}
	if cur.Deleted {
		r.logger.Debug("curriculum standard already deleted", "id", id)
		return nil
	}
	if err := r.client.StandardItem.UpdateOneID(id).SetDeleted(true).Exec(ctx); err != nil {
		return mapEntError(err, "curriculum standard")
	}
	r.logger.Info("curriculum standard deleted", "id", id, "code", cur.Code)
	return nil
}

func (r *standardItemRepository) Restore(ctx context.Context, id uuid.UUID) error {
	cur, err := r.client.StandardItem.Get(ctx, id)
	if err != nil {
		return mapEntError(err, "curriculum standard")
	}
	if !cur.Deleted {
		r.logger.Debug("curriculum standard already active", "id", id)
		return nil
	}
	if err := r.client.StandardItem.UpdateOneID(id).SetDeleted(false).Exec(ctx); err != nil {
		return mapEntError(err, "curriculum standard")
	}
	r.logger.Info("curriculum standard restored", "id", id, "code", cur.Code)
	return nil
}

func (r *standardItemRepository) CreateFromCandidate(ctx context.Context, fields llm.StandardFields) (*entity.StandardItem, error) {
	code := strings.ToUpper(strings.TrimSpace(fields.Code))
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", common.ErrValidation)
	}
	rec, err := r.client.StandardItem.Create().
		SetCode(code).
		SetSubject(strings.TrimSpace(fields.Subject)).
		SetDescription(strings.TrimSpace(fields.Description)).
		SetGradeLevel(strings.TrimSpace(fields.GradeLevel)).
		SetThematicUnit(strings.TrimSpace(fields.ThematicUnit)).
		Save(ctx)
	if err != nil {
		return nil, mapEntError(err, "curriculum standard")
	}
	return toStandardItem(rec), nil
}

func validateStandardFields(fields StandardItemFields) error {
	switch {
	case strings.TrimSpace(fields.Code) == "":
		return fmt.Errorf("%w: code is required", common.ErrValidation)
	case strings.TrimSpace(fields.Subject) == "":
		return fmt.Errorf("%w: subject is required", common.ErrValidation)
	case strings.TrimSpace(fields.Description) == "":
		return fmt.Errorf("%w: description is required", common.ErrValidation)
	}
	return nil
}

func toStandardItem(rec *ent.StandardItem) *entity.StandardItem {
	return &entity.StandardItem{
		ID:           rec.ID,
		Code:         rec.Code,
		Subject:      rec.Subject,
		Description:  rec.Description,
		GradeLevel:   rec.GradeLevel,
		ThematicUnit: rec.ThematicUnit,
		Deleted:      rec.Deleted,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
