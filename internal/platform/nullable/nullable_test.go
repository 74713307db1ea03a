package nullable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchBody struct {
	Weight Value[float64] `json:"weight"`
}

func TestValue_Unmarshal(t *testing.T) {
	var absent, null, set patchBody

	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"weight":null}`), &null))
	require.NoError(t, json.Unmarshal([]byte(`{"weight":12.5}`), &set))

	assert.False(t, absent.Weight.Set)
	assert.True(t, null.Weight.Set)
	assert.Nil(t, null.Weight.V)
	require.NotNil(t, set.Weight.V)
	assert.Equal(t, 12.5, *set.Weight.V)
}

func TestValue_Apply(t *testing.T) {
	cur := 3.0
	assert.Equal(t, &cur, Value[float64]{}.Apply(&cur))
	assert.Nil(t, Null[float64]().Apply(&cur))
	assert.Equal(t, 7.0, *Of(7.0).Apply(&cur))
}
