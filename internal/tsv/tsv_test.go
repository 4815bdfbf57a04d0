package tsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader("a\tb\tc\n1\t2\t3\nx\ty\tz\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.True(t, table.HasColumn("a"))
	assert.False(t, table.HasColumn("d"))
	assert.Equal(t, "2", table.Field(0, "b"))
	assert.Equal(t, "z", table.Field(1, "c"))
}

func TestParse_UnknownColumnIsEmpty(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader("a\n1\n"))
	require.NoError(t, err)
	assert.Equal(t, "", table.Field(0, "missing"))
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParse_HeaderOnly(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader("a\tb\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.True(t, table.HasColumn("b"))
}

func TestParse_RaggedLine(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("a\tb\tc\n1\t2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader("a\tb\n1\t2\n\n3\t4\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "3", table.Field(1, "a"))
}

func TestParse_CRLF(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader("a\tb\r\n1\t2\r\n"))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "2", table.Field(0, "b"))
}

func TestParse_QuotingDisabled(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader("a\tb\n\"one, two\"\t'3'\n"))
	require.NoError(t, err)
	assert.Equal(t, `"one, two"`, table.Field(0, "a"))
	assert.Equal(t, "'3'", table.Field(0, "b"))
}

func TestParse_EmptyFields(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader("a\tb\tc\n\t\t\n"))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "", table.Field(0, "a"))
	assert.Equal(t, "", table.Field(0, "c"))
}
