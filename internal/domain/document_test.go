package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsedDocument_Shape(t *testing.T) {
	concat := &ParsedDocument{Concatenated: true, Text: "a\nb"}
	assert.Equal(t, 1, concat.Len())
	assert.Equal(t, []string{"a\nb"}, concat.Strings())

	rows := &ParsedDocument{Rows: []string{"a", "b", "c"}}
	assert.Equal(t, 3, rows.Len())
	assert.Equal(t, []string{"a", "b", "c"}, rows.Strings())

	empty := &ParsedDocument{}
	assert.Equal(t, 0, empty.Len())
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := fmt.Errorf("conversion failed: %w", &ParseError{Path: "a.xml", Format: "xml", Err: cause})

	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrShape)
	assert.NotErrorIs(t, err, fs.ErrNotExist)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "failed to parse xml file a.xml: unexpected EOF", parseErr.Error())
}
