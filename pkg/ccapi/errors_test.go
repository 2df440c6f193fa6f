package ccapi

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCellErrorMessage(t *testing.T) {
	assert.Contains(t, CellETimedout.Error(), "timed out")
	assert.Contains(t, CellETimedout.Error(), "0x8001000b")

	assert.Contains(t, CellError(0xdeadbeef).Error(), "unknown console error")
}

func TestStatusErrorUnwrap(t *testing.T) {
	err := &StatusError{Command: "notify", Code: CellEPerm}

	assert.Contains(t, err.Error(), "notify")
	assert.Contains(t, err.Error(), "not permitted")
	assert.ErrorIs(t, err, CellEPerm)
}

func TestIsStatusErrorWrapped(t *testing.T) {
	err := errors.Wrap(&StatusError{Command: "shutdown", Code: CellEBusy}, "request failed")

	assert.True(t, IsStatusError(err))
	assert.False(t, IsStatusError(errors.New("plain error")))
}
