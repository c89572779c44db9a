package mock

import (
	"github.com/SketchShifter/starwars_backend/internal/models"
)

// Dataset シードデータ
//
// IDは持たず、お気に入りはメールアドレスと対象名で参照する。
type Dataset struct {
	Users      []models.User      `json:"users"`
	Planets    []models.Planet    `json:"planets"`
	Characters []models.Character `json:"characters"`
	Films      []models.Film      `json:"films"`
	Starships  []models.Starship  `json:"starships"`
	Favorites  []FavoriteSeed     `json:"favorites"`
}

// FavoriteSeed シード用のお気に入り
type FavoriteSeed struct {
	UserEmail    string              `json:"user_email"`
	ResourceType models.ResourceType `json:"resource_type"`
	ResourceName string              `json:"resource_name"` // 惑星名または登場人物名
}

func s(v string) *string { return &v }
func n(v int) *int       { return &v }

// Default 組み込みのシードデータ（呼び出しごとに新しいコピーを返す）
func Default() Dataset {
	return Dataset{
		Users: []models.User{
			{Name: "Luke Skywalker", Email: "luke@rebellion.org"},
			{Name: "Leia Organa", Email: "leia@alderaan.gov"},
		},
		Planets: []models.Planet{
			{Name: "Tatooine", Climate: s("arid"), Population: n(200000), Terrain: s("desert"), Diameter: s("10465")},
			{Name: "Alderaan", Climate: s("temperate"), Population: n(2000000000), Terrain: s("grasslands, mountains"), Diameter: s("12500")},
			{Name: "Hoth", Climate: s("frozen"), Terrain: s("tundra, ice caves, mountain ranges"), Diameter: s("7200")},
		},
		Characters: []models.Character{
			{Name: "Luke Skywalker", Gender: s("male"), Height: n(172), Mass: n(77), HairColor: s("blond"), EyeColor: s("blue"), BirthYear: s("19BBY")},
			{Name: "C-3PO", Gender: s("n/a"), Height: n(167), Mass: n(75), HairColor: s("n/a"), EyeColor: s("yellow"), BirthYear: s("112BBY")},
			{Name: "Darth Vader", Gender: s("male"), Height: n(202), Mass: n(136), HairColor: s("none"), EyeColor: s("yellow"), BirthYear: s("41.9BBY")},
		},
		Films: []models.Film{
			{Title: "A New Hope", EpisodeID: 4, Director: s("George Lucas"), Producer: s("Gary Kurtz, Rick McCallum"), ReleaseDate: s("1977-05-25")},
			{Title: "The Empire Strikes Back", EpisodeID: 5, Director: s("Irvin Kershner"), Producer: s("Gary Kurtz, Rick McCallum"), ReleaseDate: s("1980-05-17")},
		},
		Starships: []models.Starship{
			{Name: "X-wing", Model: s("T-65 X-wing"), Manufacturer: s("Incom Corporation"), CostInCredits: s("149999"), Length: s("12.5"), Crew: n(1), Passengers: n(0), CargoCapacity: s("110"), StarshipClass: s("Starfighter")},
			{Name: "Millennium Falcon", Model: s("YT-1300 light freighter"), Manufacturer: s("Corellian Engineering Corporation"), CostInCredits: s("100000"), Length: s("34.37"), Crew: n(4), Passengers: n(6), CargoCapacity: s("100000"), StarshipClass: s("Light freighter")},
		},
		Favorites: []FavoriteSeed{
			{UserEmail: "luke@rebellion.org", ResourceType: models.ResourceTypePlanet, ResourceName: "Tatooine"},
			{UserEmail: "leia@alderaan.gov", ResourceType: models.ResourceTypePlanet, ResourceName: "Alderaan"},
			{UserEmail: "leia@alderaan.gov", ResourceType: models.ResourceTypeCharacter, ResourceName: "Luke Skywalker"},
		},
	}
}
