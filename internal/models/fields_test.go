package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patchOf(t *testing.T, body string) Patch {
	t.Helper()
	var p Patch
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestPlanetFieldsNew(t *testing.T) {
	planet, err := PlanetFields.New(patchOf(t, `{
		"name": "Tatooine",
		"climate": "arid",
		"population": 200000,
		"terrain": "desert",
		"diameter": "10465"
	}`))
	require.NoError(t, err)

	assert.Equal(t, &Planet{
		Name:       "Tatooine",
		Climate:    strPtr("arid"),
		Population: intPtr(200000),
		Terrain:    strPtr("desert"),
		Diameter:   strPtr("10465"),
	}, planet)
}

func TestPlanetFieldsNewRequiresName(t *testing.T) {
	_, err := PlanetFields.New(patchOf(t, `{"climate": "frozen"}`))

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "name", fe.Field)
	assert.Equal(t, `field "name" is required`, err.Error())
}

func TestFieldSetRejectsUnknownAndMistyped(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", `{"name": "Hoth", "moons": 3}`, `unknown field "moons"`},
		{"id is not writable", `{"id": 10, "name": "Hoth"}`, `unknown field "id"`},
		{"string for int", `{"name": "Hoth", "population": "lots"}`, `field "population" must be an integer or null`},
		{"float for int", `{"name": "Hoth", "population": 1.5}`, `field "population" must be an integer or null`},
		{"number for string", `{"name": "Hoth", "diameter": 7200}`, `field "diameter" must be a string or null`},
		{"null name", `{"name": null}`, `field "name" cannot be null`},
		{"number name", `{"name": 42}`, `field "name" must be a string`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanetFields.New(patchOf(t, tt.body))
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestCharacterFieldsApplyPartial(t *testing.T) {
	luke := Character{
		ID:        1,
		Name:      "Luke Skywalker",
		Gender:    strPtr("male"),
		Height:    intPtr(172),
		Mass:      intPtr(77),
		HairColor: strPtr("blond"),
		EyeColor:  strPtr("blue"),
		BirthYear: strPtr("19BBY"),
	}
	original := luke

	require.NoError(t, CharacterFields.Apply(&luke, patchOf(t, `{"name": "Luke"}`)))

	assert.Equal(t, "Luke", luke.Name)
	assert.Equal(t, original.ID, luke.ID)
	assert.Equal(t, original.Gender, luke.Gender)
	assert.Equal(t, original.Height, luke.Height)
	assert.Equal(t, original.BirthYear, luke.BirthYear)
}

func TestCharacterFieldsApplyNullClears(t *testing.T) {
	c := Character{Name: "Yoda", Height: intPtr(66)}

	require.NoError(t, CharacterFields.Apply(&c, patchOf(t, `{"height": null}`)))
	assert.Nil(t, c.Height)
}

func TestFieldSetApplyIsAllOrNothing(t *testing.T) {
	c := Character{Name: "Leia", Mass: intPtr(49)}

	err := CharacterFields.Apply(&c, patchOf(t, `{"mass": 50, "name": "Leia Organa", "zzz": true}`))
	require.Error(t, err)

	assert.Equal(t, "Leia", c.Name)
	assert.Equal(t, 49, *c.Mass)
}
