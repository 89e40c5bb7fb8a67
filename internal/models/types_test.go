package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayValue(t *testing.T) {
	value, err := StringArray{"rock", "jazz"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"rock","jazz"}`, value)

	value, err = StringArray{}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{}`, value)

	value, err = StringArray(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestStringArrayValueEscapesQuotesAndBackslashes(t *testing.T) {
	value, err := StringArray{`say "hi"`, `a\b`}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"say \"hi\"","a\\b"}`, value)
}

func TestStringArrayScan(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan(`{"rock","jazz"}`))
	assert.Equal(t, StringArray{"rock", "jazz"}, a)

	require.NoError(t, a.Scan([]byte(`{unquoted,values}`)))
	assert.Equal(t, StringArray{"unquoted", "values"}, a)

	require.NoError(t, a.Scan(`{}`))
	assert.Empty(t, a)

	require.NoError(t, a.Scan(nil))
	assert.Nil(t, a)

	assert.Error(t, a.Scan(42))
}

func TestStringArrayRoundTrip(t *testing.T) {
	original := StringArray{`with "quotes"`, `back\slash`, "comma, inside", "plain"}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded StringArray
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}
