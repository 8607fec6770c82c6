package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"namegen/internal/domain"
	"namegen/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("open names/male.txt: permission denied")
	err := fmt.Errorf("load: %w", domain.WrapError(cause, errcodes.NamePoolNotReady, "name pool"))

	rq.ErrorIs(err, cause)
	rq.ErrorIs(err, domain.NewError(errcodes.NamePoolNotReady, ""))
	rq.NotErrorIs(err, domain.NewError(errcodes.EmptyNamePool, ""))
	rq.EqualError(err, "load: name pool: open names/male.txt: permission denied")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.NamePoolNotReady, code)

	_, ok = domain.GetCode(cause)
	rq.False(ok)
}
