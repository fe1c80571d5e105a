package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_NestedObjects(t *testing.T) {
	flat := Flatten(map[string]any{
		"property": map[string]any{
			"name": "Sunset Towers",
			"address": map[string]any{
				"city": "Nairobi",
			},
		},
		"total_units": float64(24),
	})

	assert.Equal(t, "Sunset Towers", flat["property.name"])
	assert.Equal(t, "Nairobi", flat["property.address.city"])
	assert.Equal(t, "24", flat["total_units"])
}

func TestFlatten_Arrays(t *testing.T) {
	flat := Flatten(map[string]any{
		"tags": []any{"a", "b", "c"},
		"leases": []any{
			map[string]any{"id": "L1"},
			map[string]any{"id": "L2"},
		},
		"mixed": []any{float64(1), "two", true},
	})

	assert.Equal(t, "a, b, c", flat["tags"])
	assert.Equal(t, `{"id":"L1"}, {"id":"L2"}`, flat["leases"])
	assert.Equal(t, "1, two, true", flat["mixed"])

	// A null element keeps its place and renders literally.
	flat = Flatten(map[string]any{"gaps": []any{"a", nil, "b"}})
	assert.Equal(t, "a, null, b", flat["gaps"])
}

func TestFlatten_Leaves(t *testing.T) {
	flat := Flatten(map[string]any{
		"nothing":  nil,
		"truthy":   true,
		"rent":     1250.5,
		"whole":    float64(3),
		"occupied": "yes",
	})

	assert.Equal(t, "", flat["nothing"])
	assert.Equal(t, "true", flat["truthy"])
	assert.Equal(t, "1250.5", flat["rent"])
	assert.Equal(t, "3", flat["whole"])
	assert.Equal(t, "yes", flat["occupied"])
}

// Every leaf of the input must land in the output under some path.
func TestFlatten_NoLeafDropped(t *testing.T) {
	flat := Flatten(map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": "deep",
				"d": nil,
			},
			"e": []any{"x"},
		},
		"f": float64(7),
	})

	assert.Len(t, flat, 4)
	assert.Contains(t, flat, "a.b.c")
	assert.Contains(t, flat, "a.b.d")
	assert.Contains(t, flat, "a.e")
	assert.Contains(t, flat, "f")
}

func TestFlattenJSON_TopLevelArray(t *testing.T) {
	flat, err := FlattenJSON([]byte(`[{"id":"L1","rent":900},{"id":"L2","rent":1100}]`))
	require.NoError(t, err)

	assert.Equal(t, "L1", flat["0.id"])
	assert.Equal(t, "900", flat["0.rent"])
	assert.Equal(t, "L2", flat["1.id"])
	assert.Equal(t, "1100", flat["1.rent"])
}

func TestFlattenJSON_Invalid(t *testing.T) {
	_, err := FlattenJSON([]byte(`not json`))
	assert.Error(t, err)
}
