package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecificationsSetKeepsFirstPosition(t *testing.T) {
	var specs Specifications
	specs.Set("color", "red")
	specs.Set("size", "large")
	specs.Set("color", "blue")

	require.Len(t, specs, 2)
	assert.Equal(t, Spec{Key: "color", Value: "blue"}, specs[0])
	assert.Equal(t, Spec{Key: "size", Value: "large"}, specs[1])
}

func TestSpecificationsLookup(t *testing.T) {
	specs := Specifications{{Key: "weight", Value: "2kg"}}

	assert.True(t, specs.Has("weight"))
	assert.False(t, specs.Has("height"))
	assert.Equal(t, "2kg", specs.Value("weight"))
	assert.Empty(t, specs.Value("height"))
	assert.Equal(t, map[string]string{"weight": "2kg"}, specs.Map())
}

func TestSpecificationsString(t *testing.T) {
	specs := Specifications{
		{Key: "color", Value: "red"},
		{Key: "size", Value: "large"},
	}

	assert.Equal(t, "color: red|size: large", specs.String())
	assert.Empty(t, Specifications{}.String())
}
