package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/brunoqueiroz/curricula-admin/gen/ent"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/userrule"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
	"github.com/brunoqueiroz/curricula-admin/internal/entity"
)

// UserRuleFields wraps parameters for creating or updating a user rule.
type UserRuleFields struct {
	RuleName    string
	Description string
	Enabled     bool
}

type UserRuleRepository interface {
	List(ctx context.Context, includeDeleted bool) ([]*entity.UserRule, error)
	Create(ctx context.Context, fields UserRuleFields) (*entity.UserRule, error)
	Update(ctx context.Context, id uuid.UUID, fields UserRuleFields) (*entity.UserRule, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

type userRuleRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRuleRepository(client *ent.Client, logger *slog.Logger) UserRuleRepository {
	return &userRuleRepository{client: client, logger: logger}
}

func (r *userRuleRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.UserRule, error) {
	q := r.client.UserRule.Query()
	if !includeDeleted {
		q = q.Where(userrule.Deleted(false))
	}
	recs, err := q.Order(userrule.ByRuleName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list user rules", "error", err)
		return nil, err
	}
	result := make([]*entity.UserRule, len(recs))
	for i, rec := range recs {
		result[i] = toUserRule(rec)
	}
	return result, nil
}

func (r *userRuleRepository) Create(ctx context.Context, fields UserRuleFields) (*entity.UserRule, error) {
	name := strings.TrimSpace(fields.RuleName)
	if name == "" {
		return nil, fmt.Errorf("%w: rule_name is required", common.ErrValidation)
	}
	builder := r.client.UserRule.Create().
		SetRuleName(name).
		SetEnabled(fields.Enabled)
	if fields.Description != "" {
		builder = builder.SetDescription(fields.Description)
	}
	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, mapEntError(err, "user rule")
	}
	return toUserRule(rec), nil
}

func (r *userRuleRepository) Update(ctx context.Context, id uuid.UUID, fields UserRuleFields) (*entity.UserRule, error) {
	name := strings.TrimSpace(fields.RuleName)
	if name == "" {
		return nil, fmt.Errorf("%w: rule_name is required", common.ErrValidation)
	}
	cur, err := r.client.UserRule.Get(ctx, id)
	if err != nil {
		return nil, mapEntError(err, "user rule")
	}
	if cur.Deleted {
		return nil, fmt.Errorf("%w: cannot edit a deleted record", common.ErrValidation)
	}
	builder := r.client.UserRule.UpdateOneID(id).
		SetRuleName(name).
		SetEnabled(fields.Enabled)
	if fields.Description != "" {
		builder = builder.SetDescription(fields.Description)
	} else {
		builder = builder.ClearDescription()
	}
	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, mapEntError(err, "user rule")
	}
	return toUserRule(rec), nil
}

func (r *userRuleRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	cur, err := r.client.UserRule.Get(ctx, id)
	if err != nil {
		return mapEntError(err, "user rule")
	}
	if cur.Deleted {
		r.logger.Debug("user rule already deleted", "id", id)
		return nil
	}
	if err := r.client.UserRule.UpdateOneID(id).SetDeleted(true).Exec(ctx); err != nil {
		return mapEntError(err, "user rule")
	}
	r.logger.Info("user rule deleted", "id", id, "rule_name", cur.RuleName)
	return nil
}

func (r *userRuleRepository) Restore(ctx context.Context, id uuid.UUID) error {
	cur, err := r.client.UserRule.Get(ctx, id)
	if err != nil {
		return mapEntError(err, "user rule")
	}
	if !cur.Deleted {
		r.logger.Debug("user rule already active", "id", id)
		return nil
	}
	if err := r.client.UserRule.UpdateOneID(id).SetDeleted(false).Exec(ctx); err != nil {
		return mapEntError(err, "user rule")
	}
	r.logger.Info("user rule restored", "id", id, "rule_name", cur.RuleName)
	return nil
}

func toUserRule(rec *ent.UserRule) *entity.UserRule {
	out := &entity.UserRule{
		ID:        rec.ID,
		RuleName:  rec.RuleName,
		Enabled:   rec.Enabled,
		Deleted:   rec.Deleted,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.Description != nil {
		out.Description = *rec.Description
	}
	return out
}
