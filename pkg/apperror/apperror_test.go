package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	c := EmailAlreadyExists("carlos@example.com")
	assert.Equal(t, KindConflict, c.Kind)
	assert.Equal(t, "email", c.Field)
	assert.Contains(t, c.Message, "carlos@example.com")

	nf := UserNotFound(999)
	assert.Equal(t, KindNotFound, nf.Kind)
	assert.Contains(t, nf.Message, "999")

	f := Forbidden()
	assert.NotContains(t, f.Message, "ADMIN")

	v := InvalidField("id", "must be an integer")
	assert.Equal(t, "id", v.Field)
	assert.Equal(t, []string{"id must be an integer"}, v.Details)
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("update user: %w", UserNotFound(3))

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, Is(err, KindNotFound))
	assert.False(t, Is(nil, KindNotFound))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("boom")))

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, CodeUserNotFound, e.Code)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "ConflictError", KindConflict.String())
	assert.Equal(t, "UnexpectedError", Kind(42).String())
}
