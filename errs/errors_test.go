//go:build unit

package errs

import (
	"errors"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEmptyError(t *testing.T) {
	t.Run("default and named messages", func(t *testing.T) {
		assert.Equal(t, "container is empty", EmptyError{}.Error(), "default message")
		assert.Equal(t, "stack is empty", Empty("stack").Error(), "named message")
	})

	t.Run("matches through wrapping regardless of message", func(t *testing.T) {
		// Prepare
		err := pkgerrors.Wrap(Empty("queue"), "dequeue")

		// Check
		assert.ErrorIs(t, err, EmptyError{}, "matches zero value")
		assert.False(t, errors.Is(err, KeyNotFound{}), "does not match other types")
		assert.Equal(t, "dequeue: queue is empty", err.Error(), "message carries context")
	})
}

func TestKeyNotFound(t *testing.T) {
	t.Run("matches through wrapping", func(t *testing.T) {
		// Prepare
		err := pkgerrors.Wrapf(KeyNotFound{}, "key %v", 42)

		// Check
		assert.ErrorIs(t, err, KeyNotFound{}, "matches zero value")
		assert.Equal(t, "key 42: key not found", err.Error(), "message carries key")

		var knf KeyNotFound
		assert.True(t, errors.As(err, &knf), "can be extracted with errors.As")
	})
}

func TestIndexOutOfRange(t *testing.T) {
	t.Run("matches through wrapping", func(t *testing.T) {
		err := pkgerrors.Wrapf(IndexOutOfRange{}, "index %d, size %d", 3, 2)
		assert.ErrorIs(t, err, IndexOutOfRange{}, "matches zero value")
		assert.Equal(t, "index 3, size 2: index out of range", err.Error(), "message carries index")
	})
}

func TestInvalidCapacity(t *testing.T) {
	t.Run("describes violated minimum", func(t *testing.T) {
		// Execute
		err := BelowMinimum(1, 2)

		// Check
		assert.Equal(t, "capacity 1 is below minimum 2", err.Error(), "message describes minimum")
		assert.ErrorIs(t, err, InvalidCapacity{}, "matches zero value")
		assert.Equal(t, "invalid capacity", InvalidCapacity{}.Error(), "default message")
	})
}
