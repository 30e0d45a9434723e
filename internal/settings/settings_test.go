package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datagrid/internal/commands"
	"datagrid/internal/sorting"
)

func TestBuildAppliesDefaults(t *testing.T) {
	s, err := NewBuilder().
		RowActionsPosition(RowActionsEnd).
		ShowSearchBar(false).
		CanSelectRows(true).
		Build()
	require.NoError(t, err)

	assert.True(t, s.AutoGenerateColumns)
	assert.False(t, s.CanResizeColumns)
	assert.False(t, s.CanResizeRows)
	assert.False(t, s.CanReorderColumns)
	assert.False(t, s.CanSortColumns)
	assert.False(t, s.StickyHeaders)
	assert.False(t, s.ShowSearchBar)
	assert.True(t, s.CanSelectRows)
	assert.Equal(t, RowActionsEnd, s.RowActionsPosition)
	require.NotNil(t, s.SortDescriptions)
	assert.Zero(t, s.SortDescriptions.Len())
	assert.NotNil(t, s.TableActions)
	assert.NotNil(t, s.RowActions)
}

func TestBuildKeepsExplicitValues(t *testing.T) {
	descs := sorting.NewDescriptions(sorting.Description{Column: "name", Direction: sorting.Descending})
	view := commands.Func{Name: "View"}

	s, err := NewBuilder().
		AutoGenerateColumns(false).
		CanSortColumns(true).
		StickyHeaders(true).
		SortDescriptions(descs).
		RowActions(view).
		RowActionsPosition(RowActionsStart).
		ShowSearchBar(true).
		CanSelectRows(false).
		Build()
	require.NoError(t, err)

	assert.False(t, s.AutoGenerateColumns)
	assert.True(t, s.CanSortColumns)
	assert.True(t, s.StickyHeaders)
	assert.Same(t, descs, s.SortDescriptions)
	require.Len(t, s.RowActions, 1)
	assert.Equal(t, "View", s.RowActions[0].Label())
}

func TestBuildReportsMissingFields(t *testing.T) {
	_, err := NewBuilder().Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSettings))
	assert.Contains(t, err.Error(), "RowActionsPosition is required")
	assert.Contains(t, err.Error(), "ShowSearchBar is required")
	assert.Contains(t, err.Error(), "CanSelectRows is required")
}

func TestBuildRejectsUnknownPosition(t *testing.T) {
	_, err := NewBuilder().
		RowActionsPosition("middle").
		ShowSearchBar(true).
		CanSelectRows(true).
		Build()
	require.ErrorIs(t, err, ErrInvalidSettings)
	assert.Contains(t, err.Error(), "RowActionsPosition must be one of [start end]")
}
