package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/brunoqueiroz/curricula-admin/internal/entity"
	"github.com/brunoqueiroz/curricula-admin/internal/llm"
	"github.com/brunoqueiroz/curricula-admin/internal/repository"
)

type fakeStandards struct {
	items       []*entity.StandardItem
	err         error
	gotIncluded bool
}

func (f *fakeStandards) List(_ context.Context, includeDeleted bool) ([]*entity.StandardItem, error) {
	f.gotIncluded = includeDeleted
	if f.err != nil {
		return nil, f.err
	}
	if includeDeleted {
		return f.items, nil
	}
	var active []*entity.StandardItem
	for _, it := range f.items {
		if !it.Deleted {
			active = append(active, it)
		}
	}
	return active, nil
}

func (f *fakeStandards) Create(context.Context, repository.StandardItemFields) (*entity.StandardItem, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStandards) Update(context.Context, uuid.UUID, repository.StandardItemFields) (*entity.StandardItem, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStandards) SoftDelete(context.Context, uuid.UUID) error { return nil }
func (f *fakeStandards) Restore(context.Context, uuid.UUID) error    { return nil }

func (f *fakeStandards) CreateFromCandidate(context.Context, llm.StandardFields) (*entity.StandardItem, error) {
	return nil, errors.New("not implemented")
}

func TestExportStandardsXLSX(t *testing.T) {
	repo := &fakeStandards{items: []*entity.StandardItem{
		{
			ID:          uuid.New(),
			Code:        "EF01MA01",
			Subject:     "Matemática",
			Description: "Utilizar números naturais como indicador de quantidade",
			GradeLevel:  "1º Ano",
			CreatedAt:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:      uuid.New(),
			Code:    "EF01LP02",
			Subject: "Língua Portuguesa",
			Deleted: true,
		},
	}}
	svc := NewService(repo, nil)

	data, err := svc.ExportStandardsXLSX(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, repo.gotIncluded)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Standards")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two data rows")
	assert.Equal(t, "Code", rows[0][0])
	assert.Equal(t, "EF01MA01", rows[1][0])
	assert.Equal(t, "active", rows[1][5])
	assert.Equal(t, "2026-03-14", rows[1][6])
	assert.Equal(t, "deleted", rows[2][5])
}

func TestExportStandardsXLSXListFailure(t *testing.T) {
	svc := NewService(&fakeStandards{err: errors.New("db down")}, nil)

	_, err := svc.ExportStandardsXLSX(context.Background(), false)
	assert.ErrorContains(t, err, "query standards")
}
