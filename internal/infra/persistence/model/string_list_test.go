package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_Value(t *testing.T) {
	val, err := StringList{"tomatoes", "salt"}.Value()

	require.NoError(t, err)
	assert.Equal(t, `["tomatoes","salt"]`, val)
}

func TestStringList_Value_Nil(t *testing.T) {
	var l StringList

	val, err := l.Value()

	require.NoError(t, err)
	assert.Equal(t, "[]", val)
}

func TestStringList_Scan(t *testing.T) {
	var l StringList

	require.NoError(t, l.Scan([]byte(`["chop","simmer"]`)))
	assert.Equal(t, StringList{"chop", "simmer"}, l)
}

func TestStringList_Scan_String(t *testing.T) {
	var l StringList

	require.NoError(t, l.Scan(`["vegan"]`))
	assert.Equal(t, StringList{"vegan"}, l)
}

func TestStringList_Scan_Nil(t *testing.T) {
	l := StringList{"stale"}

	require.NoError(t, l.Scan(nil))
	assert.Nil(t, l)
}

func TestStringList_Scan_UnsupportedType(t *testing.T) {
	var l StringList

	assert.Error(t, l.Scan(42))
}
