package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stateErr struct{ code string }

func (e *stateErr) Error() string    { return "pg error " + e.code }
func (e *stateErr) SQLState() string { return e.code }

func TestConstraintHelpers(t *testing.T) {
	unique := errors.Wrap(&stateErr{code: pgUniqueViolation}, "insert")
	fk := &stateErr{code: pgForeignKeyViolation}
	check := errors.New(`ERROR: new row violates check constraint "products_price_check" (SQLSTATE 23514)`)
	notNull := &stateErr{code: pgNotNullViolation}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(fk))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(nil))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\d`, escapeLike(`c:\d`))
}
