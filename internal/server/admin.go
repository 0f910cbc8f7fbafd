package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	curriculav1 "github.com/brunoqueiroz/curricula-admin/gen/proto/curricula/v1"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
	"github.com/brunoqueiroz/curricula-admin/internal/entity"
	"github.com/brunoqueiroz/curricula-admin/internal/lifecycle"
	"github.com/brunoqueiroz/curricula-admin/internal/repository"
)

type AdminService struct {
	curriculav1.UnimplementedAdminServiceServer
	institutions  repository.InstitutionRepository
	types         repository.InstitutionTypeRepository
	rules         repository.UserRuleRepository
	instLifecycle *lifecycle.Controller[*entity.Institution]
	typeLifecycle *lifecycle.Controller[*entity.InstitutionType]
	ruleLifecycle *lifecycle.Controller[*entity.UserRule]
	logger        *slog.Logger
}

func NewAdminService(
	institutions repository.InstitutionRepository,
	types repository.InstitutionTypeRepository,
	rules repository.UserRuleRepository,
	instCtrl *lifecycle.Controller[*entity.Institution],
	typeCtrl *lifecycle.Controller[*entity.InstitutionType],
	ruleCtrl *lifecycle.Controller[*entity.UserRule],
	logger *slog.Logger,
) *AdminService {
	return &AdminService{
		institutions:  institutions,
		types:         types,
		rules:         rules,
		instLifecycle: instCtrl,
		typeLifecycle: typeCtrl,
		ruleLifecycle: ruleCtrl,
		logger:        logger,
	}
}

func (s *AdminService) ListInstitutions(ctx context.Context, req *curriculav1.ListInstitutionsRequest) (*curriculav1.ListInstitutionsResponse, error) {
	recs, err := s.instLifecycle.List(ctx, req.GetIncludeDeleted())
	if err != nil {
		s.logger.Error("failed to list institutions", "error", err)
		return nil, common.ToStatus(err)
	}
	out := make([]*curriculav1.Institution, 0, len(recs))
	for _, r := range recs {
		out = append(out, toPBInstitution(r))
	}
	return &curriculav1.ListInstitutionsResponse{Institutions: out}, nil
}

func (s *AdminService) CreateInstitution(ctx context.Context, req *curriculav1.CreateInstitutionRequest) (*curriculav1.CreateInstitutionResponse, error) {
	if err := s.instLifecycle.Guard(ctx); err != nil {
		return nil, common.ToStatus(err)
	}
	fields, err := institutionFields(req.GetName(), req.GetTypeId(), req.GetCity(), req.GetCountry(), req.GetPostalCode())
	if err != nil {
		return nil, err
	}
	rec, err := s.institutions.Create(ctx, fields)
	if err != nil {
		s.logger.Error("failed to create institution", "name", req.GetName(), "error", err)
		return nil, common.ToStatus(err)
	}
	s.logger.Info("institution created", "id", rec.ID, "name", rec.Name)
	return &curriculav1.CreateInstitutionResponse{Institution: toPBInstitution(rec)}, nil
}

func (s *AdminService) UpdateInstitution(ctx context.Context, req *curriculav1.UpdateInstitutionRequest) (*curriculav1.UpdateInstitutionResponse, error) {
	if err := s.instLifecycle.Guard(ctx); err != nil {
		return nil, common.ToStatus(err)
	}
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	fields, err := institutionFields(req.GetName(), req.GetTypeId(), req.GetCity(), req.GetCountry(), req.GetPostalCode())
	if err != nil {
		return nil, err
	}
	rec, err := s.institutions.Update(ctx, id, fields)
	if err != nil {
		s.logger.Error("failed to update institution", "id", id, "error", err)
		return nil, common.ToStatus(err)
	}
	return &curriculav1.UpdateInstitutionResponse{Institution: toPBInstitution(rec)}, nil
}

func (s *AdminService) DeleteInstitution(ctx context.Context, req *curriculav1.DeleteInstitutionRequest) (*curriculav1.DeleteInstitutionResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.instLifecycle.Delete(ctx, id); err != nil {
		return nil, common.ToStatus(err)
	}
	return &curriculav1.DeleteInstitutionResponse{}, nil
}

func (s *AdminService) RestoreInstitution(ctx context.Context, req *curriculav1.RestoreInstitutionRequest) (*curriculav1.RestoreInstitutionResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.instLifecycle.Restore(ctx, id); err != nil {
		return nil, common.ToStatus(err)
	}
	return &curriculav1.RestoreInstitutionResponse{}, nil
}

func (s *AdminService) ListInstitutionTypes(ctx context.Context, req *curriculav1.ListInstitutionTypesRequest) (*curriculav1.ListInstitutionTypesResponse, error) {
	recs, err := s.typeLifecycle.List(ctx, req.GetIncludeDeleted())
	if err != nil {
		s.logger.Error("failed to list institution types", "error", err)
		return nil, common.ToStatus(err)
	}
	out := make([]*curriculav1.InstitutionType, 0, len(recs))
	for _, r := range recs {
		out = append(out, toPBInstitutionType(r))
	}
	return &curriculav1.ListInstitutionTypesResponse{Types: out}, nil
}

func (s *AdminService) CreateInstitutionType(ctx context.Context, req *curriculav1.CreateInstitutionTypeRequest) (*curriculav1.CreateInstitutionTypeResponse, error) {
	if err := s.typeLifecycle.Guard(ctx); err != nil {
		return nil, common.ToStatus(err)
	}
	rec, err := s.types.Create(ctx, req.GetName())
	if err != nil {
		s.logger.Error("failed to create institution type", "name", req.GetName(), "error", err)
		return nil, common.ToStatus(err)
	}
	return &curriculav1.CreateInstitutionTypeResponse{Type: toPBInstitutionType(rec)}, nil
}

func (s *AdminService) UpdateInstitutionType(ctx context.Context, req *curriculav1.UpdateInstitutionTypeRequest) (*curriculav1.UpdateInstitutionTypeResponse, error) {
	if err := s.typeLifecycle.Guard(ctx); err != nil {
		return nil, common.ToStatus(err)
	}
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	rec, err := s.types.Update(ctx, id, req.GetName())
	if err != nil {
		s.logger.Error("failed to update institution type", "id", id, "error", err)
		return nil, common.ToStatus(err)
	}
	return &curriculav1.UpdateInstitutionTypeResponse{Type: toPBInstitutionType(rec)}, nil
}

func (s *AdminService) DeleteInstitutionType(ctx context.Context, req *curriculav1.DeleteInstitutionTypeRequest) (*curriculav1.DeleteInstitutionTypeResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.typeLifecycle.Delete(ctx, id); err != nil {
		return nil, common.ToStatus(err)
	}
	return &curriculav1.DeleteInstitutionTypeResponse{}, nil
}

func (s *AdminService) RestoreInstitutionType(ctx context.Context, req *curriculav1.RestoreInstitutionTypeRequest) (*curriculav1.RestoreInstitutionTypeResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.typeLifecycle.Restore(ctx, id); err != nil {
		return nil, common.ToStatus(err)
	}
	return &curriculav1.RestoreInstitutionTypeResponse{}, nil
}

func (s *AdminService) ListUserRules(ctx context.Context, req *curriculav1.ListUserRulesRequest) (*curriculav1.ListUserRulesResponse, error) {
	recs, err := s.ruleLifecycle.List(ctx, req.GetIncludeDeleted())
	if err != nil {
		s.logger.Error("failed to list user rules", "error", err)
		return nil, common.ToStatus(err)
	}
	out := make([]*curriculav1.UserRule, 0, len(recs))
	for _, r := range recs {
		out = append(out, toPBUserRule(r))
	}
	return &curriculav1.ListUserRulesResponse{Rules: out}, nil
}

func (s *AdminService) CreateUserRule(ctx context.Context, req *curriculav1.CreateUserRuleRequest) (*curriculav1.CreateUserRuleResponse, error) {
	if err := s.ruleLifecycle.Guard(ctx); err != nil {
		return nil, common.ToStatus(err)
	}
	rec, err := s.rules.Create(ctx, repository.UserRuleFields{
		RuleName:    req.GetRuleName(),
		Description: req.GetDescription(),
		Enabled:     req.GetEnabled(),
	})
	if err != nil {
		s.logger.Error("failed to create user rule", "rule_name", req.GetRuleName(), "error", err)
		return nil, common.ToStatus(err)
	}
	return &curriculav1.CreateUserRuleResponse{Rule: toPBUserRule(rec)}, nil
}

func (s *AdminService) UpdateUserRule(ctx context.Context, req *curriculav1.UpdateUserRuleRequest) (*curriculav1.UpdateUserRuleResponse, error) {
	if err := s.ruleLifecycle.Guard(ctx); err != nil {
		return nil, common.ToStatus(err)
	}
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	rec, err := s.rules.Update(ctx, id, repository.UserRuleFields{
		RuleName:    req.GetRuleName(),
		Description: req.GetDescription(),
		Enabled:     req.GetEnabled(),
	})
	if err != nil {
		s.logger.Error("failed to update user rule", "id", id, "error", err)
		return nil, common.ToStatus(err)
	}
	return &curriculav1.UpdateUserRuleResponse{Rule: toPBUserRule(rec)}, nil
}

func (s *AdminService) DeleteUserRule(ctx context.Context, req *curriculav1.DeleteUserRuleRequest) (*curriculav1.DeleteUserRuleResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.ruleLifecycle.Delete(ctx, id); err != nil {
		return nil, common.ToStatus(err)
	}
	return &curriculav1.DeleteUserRuleResponse{}, nil
}

func (s *AdminService) RestoreUserRule(ctx context.Context, req *curriculav1.RestoreUserRuleRequest) (*curriculav1.RestoreUserRuleResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.ruleLifecycle.Restore(ctx, id); err != nil {
		return nil, common.ToStatus(err)
	}
	return &curriculav1.RestoreUserRuleResponse{}, nil
}

func institutionFields(name, typeID, city, country, postalCode string) (repository.InstitutionFields, error) {
	fields := repository.InstitutionFields{
		Name:       name,
		City:       city,
		Country:    country,
		PostalCode: postalCode,
	}
	if raw := strings.TrimSpace(typeID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fields, status.Error(codes.InvalidArgument, "type_id must be a UUID")
		}
		fields.TypeID = &id
	}
	return fields, nil
}

func toPBInstitution(r *entity.Institution) *curriculav1.Institution {
	out := &curriculav1.Institution{
		Id:         r.ID.String(),
		Name:       r.Name,
		TypeName:   r.TypeName,
		City:       r.City,
		Country:    r.Country,
		PostalCode: r.PostalCode,
		Deleted:    r.Deleted,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339Nano),
	}
	if r.TypeID != nil {
		out.TypeId = r.TypeID.String()
	}
	return out
}

func toPBInstitutionType(r *entity.InstitutionType) *curriculav1.InstitutionType {
	return &curriculav1.InstitutionType{
		Id:      r.ID.String(),
		Name:    r.Name,
		Deleted: r.Deleted,
	}
}

func toPBUserRule(r *entity.UserRule) *curriculav1.UserRule {
	return &curriculav1.UserRule{
		Id:          r.ID.String(),
		RuleName:    r.RuleName,
		Description: r.Description,
		Enabled:     r.Enabled,
		Deleted:     r.Deleted,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339Nano),
	}
}
