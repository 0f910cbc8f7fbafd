package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{nil, codes.OK},
		{ErrNotFound, codes.NotFound},
		{ErrValidation, codes.InvalidArgument},
		{ErrUnsupportedFormat, codes.InvalidArgument},
		{ErrForbidden, codes.PermissionDenied},
		{ErrExtractionService, codes.Unavailable},
		{ErrInternal, codes.Internal},
		{errors.New("something else"), codes.Internal},
		// Wrapped sentinels keep their mapping.
		{fmt.Errorf("institution: %w", ErrNotFound), codes.NotFound},
		{fmt.Errorf("%w: code is required", ErrValidation), codes.InvalidArgument},
	}
	for _, tc := range cases {
		got := ToStatus(tc.err)
		if tc.want == codes.OK {
			assert.NoError(t, got)
			continue
		}
		assert.Equal(t, tc.want, status.Code(got), "error: %v", tc.err)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
	assert.Contains(t, err.Error(), "DB_URL is required")
}
