package commands_test

import (
	"testing"

	"logitrack/internal/core/application/usecases/commands"
	"logitrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOfficeCommand(t *testing.T) {
	cmd, err := commands.NewCreateOfficeCommand("off_4", "Harbor Depot", "Baltimore", "bwi")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "BWI", cmd.Office().Code())

	_, err = commands.NewCreateOfficeCommand("", "", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	require.ErrorIs(t, commands.CreateOfficeCommand{}.Validate(), commands.ErrCreateOfficeCommandIsNotConstructed)
}
