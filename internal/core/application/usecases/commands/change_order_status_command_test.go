package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewOrderID()

	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Shipped)
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, order.Shipped, cmd.Status())
}

func TestNewChangeOrderStatusCommand_UnconstructedOrderID(t *testing.T) {
	var invalidID kernel.OrderID

	_, err := commands.NewChangeOrderStatusCommand(invalidID, order.Shipped)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewChangeOrderStatusCommand_UnknownStatus(t *testing.T) {
	id := kernel.NewOrderID()

	_, err := commands.NewChangeOrderStatusCommand(id, order.Status(99))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
