package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFavoriteFromResource(t *testing.T) {
	fav := NewFavorite(3, CharacterResource(5))

	assert.Equal(t, uint(3), fav.UserID)
	assert.Equal(t, ResourceTypeCharacter, fav.ResourceType)
	assert.Equal(t, uint(5), fav.ResourceID)

	assert.Equal(t, "character(5)", CharacterResource(5).String())
	assert.NoError(t, fav.BeforeSave(nil))
}

func TestFavoriteRejectsUnknownType(t *testing.T) {
	fav := Favorite{ID: 9, ResourceType: "starship", ResourceID: 1}
	assert.Error(t, fav.BeforeSave(nil))
}

func TestFavoriteSerialization(t *testing.T) {
	fav := Favorite{ID: 1, UserID: 2, ResourceType: ResourceTypePlanet, ResourceID: 3}

	b, err := json.Marshal(fav)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"user_id":2,"resource_type":"planet","resource_id":3}`, string(b))
}

func TestUserSerializationNestsFavorites(t *testing.T) {
	u := User{ID: 1, Name: "Han", Email: "han@falcon.io"}
	require.NoError(t, u.AfterFind(nil))

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Han","email":"han@falcon.io","favorites":[]}`, string(b))
}

func TestPlanetSerializationKeepsNulls(t *testing.T) {
	b, err := json.Marshal(Planet{ID: 4, Name: "Dagobah"})
	require.NoError(t, err)
	assert.Equal(t, `{"id":4,"name":"Dagobah","climate":null,"population":null,"terrain":null,"diameter":null}`, string(b))
}
