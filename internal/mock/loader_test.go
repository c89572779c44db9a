package mock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SketchShifter/starwars_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `
users:
  - name: Han Solo
    email: han@falcon.io
planets:
  - name: Bespin
    climate: temperate
    population: 6000000
    diameter: "118000"
characters:
  - name: Chewbacca
    height: 228
    mass: 112
films:
  - title: Return of the Jedi
    episode_id: 6
starships:
  - name: Slave 1
    crew: 1
favorites:
  - user_email: han@falcon.io
    resource_type: character
    resource_name: Chewbacca
`

func TestParse(t *testing.T) {
	ds, err := Parse([]byte(fixture))
	require.NoError(t, err)

	require.Len(t, ds.Users, 1)
	assert.Equal(t, "han@falcon.io", ds.Users[0].Email)

	require.Len(t, ds.Planets, 1)
	assert.Equal(t, "Bespin", ds.Planets[0].Name)
	require.NotNil(t, ds.Planets[0].Population)
	assert.Equal(t, 6000000, *ds.Planets[0].Population)
	assert.Nil(t, ds.Planets[0].Terrain)
	assert.Equal(t, "118000", *ds.Planets[0].Diameter)

	assert.Equal(t, 6, ds.Films[0].EpisodeID)
	assert.Equal(t, 1, *ds.Starships[0].Crew)
	assert.Equal(t, FavoriteSeed{
		UserEmail:    "han@falcon.io",
		ResourceType: models.ResourceTypeCharacter,
		ResourceName: "Chewbacca",
	}, ds.Favorites[0])
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("planets:\n  - name: Naboo\n    moons: 3\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	ds, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, ds.Characters, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Planets[0].Name = "changed"

	b := Default()
	assert.Equal(t, "Tatooine", b.Planets[0].Name)
}
