package errors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	svcErr "github.com/oggyb/matching-service/internal/errors"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want svcErr.Kind
	}{
		{"invalid", svcErr.Invalid("bad %s", "date"), svcErr.InvalidValue},
		{"wrapped missing", fmt.Errorf("ctx: %w", svcErr.Missing("no record")), svcErr.NotFound},
		{"gorm not found", gorm.ErrRecordNotFound, svcErr.NotFound},
		{"gorm duplicate", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), svcErr.AlreadyExists},
		{"transition", svcErr.Transition("nope"), svcErr.InvalidTransition},
		{"anything else", errors.New("connection reset"), svcErr.StorageFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svcErr.KindOf(tc.err))
		})
	}
}

func TestIsMatchesSentinelByKind(t *testing.T) {
	err := fmt.Errorf("get: %w", svcErr.Missing("age range for user 42 not found"))
	assert.True(t, errors.Is(err, svcErr.ErrNotFound))
	assert.False(t, errors.Is(err, svcErr.ErrInvalidValue))
}

func TestMessageHidesStorageCause(t *testing.T) {
	err := svcErr.Storage(errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal storage error", svcErr.Message(err))
	assert.Contains(t, err.Error(), "password authentication failed")

	assert.Equal(t, "bad height", svcErr.Message(svcErr.Invalid("bad height")))
	assert.Equal(t, "record not found", svcErr.Message(gorm.ErrRecordNotFound))
}

func TestStorageKeepsTypedErrors(t *testing.T) {
	in := svcErr.Exists("dup")
	assert.Same(t, in, svcErr.Storage(in))
	assert.Nil(t, svcErr.Storage(nil))
}

func TestMap(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{svcErr.Invalid("x"), codes.InvalidArgument},
		{svcErr.Exists("x"), codes.AlreadyExists},
		{gorm.ErrRecordNotFound, codes.NotFound},
		{svcErr.Transition("x"), codes.FailedPrecondition},
		{errors.New("boom"), codes.Internal},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{context.Canceled, codes.Canceled},
	}
	for _, tc := range cases {
		st, ok := status.FromError(svcErr.Map(tc.err))
		assert.True(t, ok)
		assert.Equal(t, tc.code, st.Code(), tc.err.Error())
	}
	assert.NoError(t, svcErr.Map(nil))

	st, _ := status.FromError(svcErr.Map(errors.New("secret dsn")))
	assert.NotContains(t, st.Message(), "secret")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, svcErr.HTTPStatus(svcErr.Invalid("x")))
	assert.Equal(t, http.StatusBadRequest, svcErr.HTTPStatus(svcErr.Exists("x")))
	assert.Equal(t, http.StatusBadRequest, svcErr.HTTPStatus(svcErr.Transition("x")))
	assert.Equal(t, http.StatusNotFound, svcErr.HTTPStatus(svcErr.Missing("x")))
	assert.Equal(t, http.StatusInternalServerError, svcErr.HTTPStatus(errors.New("x")))
	assert.Equal(t, http.StatusOK, svcErr.HTTPStatus(nil))
}
