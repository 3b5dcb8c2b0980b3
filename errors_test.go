package recordgen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/recordgen"
	"github.com/syssam/recordgen/schema/field"
)

func TestUnknownColumnError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := recordgen.NewUnknownColumnError("Book", "isbn13")
		assert.Equal(t, `recordgen: Book has no column "isbn13"`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := recordgen.NewUnknownColumnError("Book", "x")
		assert.True(t, errors.Is(err, recordgen.ErrUnknownColumn))
	})

	t.Run("IsUnknownColumn", func(t *testing.T) {
		err := recordgen.NewUnknownColumnError("Publisher", "x")
		assert.True(t, recordgen.IsUnknownColumn(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, recordgen.IsUnknownColumn(wrapped))

		// Sentinel error
		assert.True(t, recordgen.IsUnknownColumn(recordgen.ErrUnknownColumn))

		// Non-matching error
		assert.False(t, recordgen.IsUnknownColumn(errors.New("other error")))
		assert.False(t, recordgen.IsUnknownColumn(nil))
	})
}

func TestAssignError(t *testing.T) {
	cause := &field.TypeMismatchError{Type: field.TypeInt, Got: "string"}
	err := &recordgen.AssignError{Class: "Author", Column: "age", Err: cause}
	assert.Equal(t, "recordgen: assign Author.age: field: cannot use string as int value", err.Error())
	assert.True(t, errors.Is(err, field.ErrTypeMismatch))
	assert.True(t, recordgen.IsAssignError(fmt.Errorf("wrapper: %w", err)))
	assert.False(t, recordgen.IsAssignError(cause))
	assert.False(t, recordgen.IsAssignError(nil))
}
