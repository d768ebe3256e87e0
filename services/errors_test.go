package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorUnwrapsToKind(t *testing.T) {
	err := conflict("TEMPLATE_IN_USE", "in use", 3)

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "in use", err.Error())
	assert.Equal(t, int64(3), err.Count)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, errOrderNotFound))

	err := translate(gorm.ErrRecordNotFound, errOrderNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	err = translate(gorm.ErrDuplicatedKey, errOrderNotFound)
	assert.ErrorIs(t, err, ErrConflict)

	err = translate(gorm.ErrForeignKeyViolated, errOrderNotFound)
	assert.ErrorIs(t, err, ErrValidation)

	boom := errors.New("disk full")
	err = translate(boom, errOrderNotFound)
	assert.ErrorIs(t, err, boom)
	var svcErr *Error
	assert.False(t, errors.As(err, &svcErr))
}
