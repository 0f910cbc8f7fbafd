package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	curriculav1 "github.com/brunoqueiroz/curricula-admin/gen/proto/curricula/v1"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
	"github.com/brunoqueiroz/curricula-admin/internal/entity"
	"github.com/brunoqueiroz/curricula-admin/internal/export"
	"github.com/brunoqueiroz/curricula-admin/internal/lifecycle"
	"github.com/brunoqueiroz/curricula-admin/internal/repository"
)

type CurriculumService struct {
	curriculav1.UnimplementedCurriculumServiceServer
	standards repository.StandardItemRepository
	lifecycle *lifecycle.Controller[*entity.StandardItem]
	exporter  *export.Service
	logger    *slog.Logger
}

func NewCurriculumService(
	standards repository.StandardItemRepository,
	ctrl *lifecycle.Controller[*entity.StandardItem],
	exporter *export.Service,
	logger *slog.Logger,
) *CurriculumService {
	return &CurriculumService{
		standards: standards,
		lifecycle: ctrl,
		exporter:  exporter,
		logger:    logger,
	}
}

func (s *CurriculumService) ListStandards(ctx context.Context, req *curriculav1.ListStandardsRequest) (*curriculav1.ListStandardsResponse, error) {
	recs, err := s.lifecycle.List(ctx, req.GetIncludeDeleted())
	if err != nil {
		s.logger.Error("failed to list standards", "error", err)
		return nil, common.ToStatus(err)
	}
	out := make([]*curriculav1.StandardItem, 0, len(recs))
	for _, r := range recs {
		out = append(out, toPBStandard(r))
	}
	return &curriculav1.ListStandardsResponse{Items: out}, nil
}

func (s *CurriculumService) CreateStandard(ctx context.Context, req *curriculav1.CreateStandardRequest) (*curriculav1.CreateStandardResponse, error) {
	if err := s.lifecycle.Guard(ctx); err != nil {
		return nil, common.ToStatus(err)
	}
	rec, err := s.standards.Create(ctx, repository.StandardItemFields{
		Code:         req.GetCode(),
		Subject:      req.GetSubject(),
		Description:  req.GetDescription(),
		GradeLevel:   req.GetGradeLevel(),
		ThematicUnit: req.GetThematicUnit(),
	})
	if err != nil {
		s.logger.Error("failed to create standard", "code", req.GetCode(), "error", err)
		return nil, common.ToStatus(err)
	}
	s.logger.Info("standard created", "id", rec.ID, "code", rec.Code)
	return &curriculav1.CreateStandardResponse{Item: toPBStandard(rec)}, nil
}

func (s *CurriculumService) UpdateStandard(ctx context.Context, req *curriculav1.UpdateStandardRequest) (*curriculav1.UpdateStandardResponse, error) {
	if err := s.lifecycle.Guard(ctx); err != nil {
		return nil, common.ToStatus(err)
	}
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	rec, err := s.standards.Update(ctx, id, repository.StandardItemFields{
		Code:         req.GetCode(),
		Subject:      req.GetSubject(),
		Description:  req.GetDescription(),
		GradeLevel:   req.GetGradeLevel(),
		ThematicUnit: req.GetThematicUnit(),
	})
	if err != nil {
		s.logger.Error("failed to update standard", "id", id, "error", err)
		return nil, common.ToStatus(err)
	}
	return &curriculav1.UpdateStandardResponse{Item: toPBStandard(rec)}, nil
}

func (s *CurriculumService) DeleteStandard(ctx context.Context, req *curriculav1.DeleteStandardRequest) (*curriculav1.DeleteStandardResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.Delete(ctx, id); err != nil {
		return nil, common.ToStatus(err)
	}
	return &curriculav1.DeleteStandardResponse{}, nil
}

func (s *CurriculumService) RestoreStandard(ctx context.Context, req *curriculav1.RestoreStandardRequest) (*curriculav1.RestoreStandardResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.Restore(ctx, id); err != nil {
		return nil, common.ToStatus(err)
	}
	return &curriculav1.RestoreStandardResponse{}, nil
}

func (s *CurriculumService) ExportStandards(ctx context.Context, req *curriculav1.ExportStandardsRequest) (*curriculav1.ExportStandardsResponse, error) {
	data, err := s.exporter.ExportStandardsXLSX(ctx, req.GetIncludeDeleted())
	if err != nil {
		s.logger.Error("failed to export standards", "error", err)
		return nil, common.ToStatus(err)
	}
	name := fmt.Sprintf("curriculum-standards-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	return &curriculav1.ExportStandardsResponse{Xlsx: data, Filename: name}, nil
}

func parseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	return id, nil
}

func toPBStandard(r *entity.StandardItem) *curriculav1.StandardItem {
	return &curriculav1.StandardItem{
		Id:           r.ID.String(),
		Code:         r.Code,
		Subject:      r.Subject,
		Description:  r.Description,
		GradeLevel:   r.GradeLevel,
		ThematicUnit: r.ThematicUnit,
		Deleted:      r.Deleted,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339Nano),
	}
}
