package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewOrderID()

	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
}

func TestNewCancelOrderCommand_UnconstructedOrderID(t *testing.T) {
	var invalidID kernel.OrderID

	_, err := commands.NewCancelOrderCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
