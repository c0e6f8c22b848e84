// Package location holds the static country → city → commune table used by
// search filters and profile forms, and the cascading selection over it.
package location

import (
	"errors"
	"fmt"
)

// City is a city and its communes, in display order.
type City struct {
	Name     string   `json:"name"`
	Communes []string `json:"communes"`
}

// Country groups the cities offered for one country.
type Country struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Cities []City `json:"cities"`
}

var (
	ErrUnknownCountry = errors.New("unknown country")
	ErrUnknownCity    = errors.New("unknown city")
	ErrUnknownCommune = errors.New("unknown commune")
	ErrMissingParent  = errors.New("location level set without its parent")
)

// table is ordered for display; index maps names to positions.
var table = []Country{
	{
		Name: "Côte d'Ivoire", Code: "CI",
		Cities: []City{
			{Name: "Abidjan", Communes: []string{"Abobo", "Adjamé", "Attécoubé", "Cocody", "Koumassi", "Marcory", "Plateau", "Port-Bouët", "Treichville", "Yopougon", "Bingerville", "Songon", "Anyama"}},
			{Name: "Yamoussoukro", Communes: []string{"Yamoussoukro", "Attiégouakro"}},
			{Name: "Bouaké", Communes: []string{"Bouaké", "Brobo", "Djébonoua"}},
			{Name: "San-Pédro", Communes: []string{"San-Pédro", "Grand-Béréby"}},
			{Name: "Grand-Bassam", Communes: []string{"Grand-Bassam", "Bonoua"}},
			{Name: "Assinie", Communes: []string{"Assinie-Mafia"}},
		},
	},
	{
		Name: "Sénégal", Code: "SN",
		Cities: []City{
			{Name: "Dakar", Communes: []string{"Plateau", "Médina", "Fann-Point E-Amitié", "Mermoz-Sacré-Cœur", "Ngor", "Ouakam", "Yoff", "Parcelles Assainies", "Grand Yoff", "HLM"}},
			{Name: "Mbour", Communes: []string{"Mbour", "Saly Portudal", "Ngaparou", "Somone"}},
			{Name: "Saint-Louis", Communes: []string{"Saint-Louis"}},
			{Name: "Ziguinchor", Communes: []string{"Ziguinchor", "Cap Skirring"}},
			{Name: "Thiès", Communes: []string{"Thiès Est", "Thiès Nord", "Thiès Ouest"}},
		},
	},
	{
		Name: "Mali", Code: "ML",
		Cities: []City{
			{Name: "Bamako", Communes: []string{"Commune I", "Commune II", "Commune III", "Commune IV", "Commune V", "Commune VI"}},
			{Name: "Ségou", Communes: []string{"Ségou"}},
			{Name: "Mopti", Communes: []string{"Mopti", "Sévaré"}},
		},
	},
	{
		Name: "Burkina Faso", Code: "BF",
		Cities: []City{
			{Name: "Ouagadougou", Communes: []string{"Arrondissement 1", "Arrondissement 2", "Arrondissement 3", "Arrondissement 4", "Arrondissement 5", "Arrondissement 6", "Arrondissement 7", "Arrondissement 8", "Arrondissement 9", "Arrondissement 10", "Arrondissement 11", "Arrondissement 12"}},
			{Name: "Bobo-Dioulasso", Communes: []string{"Dafra", "Dô", "Konsa", "Sya", "Dô Kongolo"}},
		},
	},
	{
		Name: "Bénin", Code: "BJ",
		Cities: []City{
			{Name: "Cotonou", Communes: []string{"Cotonou"}},
			{Name: "Porto-Novo", Communes: []string{"Porto-Novo"}},
			{Name: "Ouidah", Communes: []string{"Ouidah"}},
			{Name: "Abomey-Calavi", Communes: []string{"Abomey-Calavi", "Godomey"}},
		},
	},
	{
		Name: "Togo", Code: "TG",
		Cities: []City{
			{Name: "Lomé", Communes: []string{"Golfe 1", "Golfe 2", "Golfe 3", "Golfe 4", "Golfe 5", "Golfe 6", "Golfe 7", "Agoè-Nyivé"}},
			{Name: "Kpalimé", Communes: []string{"Kloto 1"}},
			{Name: "Aného", Communes: []string{"Lacs 1"}},
		},
	},
	{
		Name: "Guinée", Code: "GN",
		Cities: []City{
			{Name: "Conakry", Communes: []string{"Kaloum", "Dixinn", "Matam", "Ratoma", "Matoto"}},
			{Name: "Kindia", Communes: []string{"Kindia"}},
		},
	},
	{
		Name: "Niger", Code: "NE",
		Cities: []City{
			{Name: "Niamey", Communes: []string{"Niamey I", "Niamey II", "Niamey III", "Niamey IV", "Niamey V"}},
		},
	},
}

var index = buildIndex(table)

type cityKey struct{ country, city string }

type tableIndex struct {
	countries map[string]int
	cities    map[cityKey]int
}

func buildIndex(t []Country) tableIndex {
	idx := tableIndex{
		countries: make(map[string]int, len(t)),
		cities:    make(map[cityKey]int),
	}
	for i, c := range t {
		idx.countries[c.Name] = i
		for j, city := range c.Cities {
			idx.cities[cityKey{c.Name, city.Name}] = j
		}
	}
	return idx
}

// Table returns a copy of the full lookup table.
func Table() []Country {
	out := make([]Country, len(table))
	for i, c := range table {
		cities := make([]City, len(c.Cities))
		for j, city := range c.Cities {
			cities[j] = City{Name: city.Name, Communes: append([]string(nil), city.Communes...)}
		}
		out[i] = Country{Name: c.Name, Code: c.Code, Cities: cities}
	}
	return out
}

// Countries lists country names in display order.
func Countries() []string {
	out := make([]string, 0, len(table))
	for _, c := range table {
		out = append(out, c.Name)
	}
	return out
}

// Cities lists the cities of a country. Unknown countries yield an empty list.
func Cities(country string) []string {
	i, ok := index.countries[country]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(table[i].Cities))
	for _, city := range table[i].Cities {
		out = append(out, city.Name)
	}
	return out
}

// Communes lists the communes of a city. Unknown pairs yield an empty list.
func Communes(country, city string) []string {
	ci, ok := index.countries[country]
	if !ok {
		return []string{}
	}
	j, ok := index.cities[cityKey{country, city}]
	if !ok {
		return []string{}
	}
	return append([]string{}, table[ci].Cities[j].Communes...)
}

// Validate checks that each non-empty level exists under its parent.
// Empty city and commune are allowed; a commune needs a city and a city needs a country.
func Validate(country, city, commune string) error {
	if country == "" {
		if city != "" || commune != "" {
			return ErrMissingParent
		}
		return nil
	}
	if _, ok := index.countries[country]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}
	if city == "" {
		if commune != "" {
			return ErrMissingParent
		}
		return nil
	}
	if _, ok := index.cities[cityKey{country, city}]; !ok {
		return fmt.Errorf("%w: %q in %q", ErrUnknownCity, city, country)
	}
	if commune == "" {
		return nil
	}
	for _, c := range Communes(country, city) {
		if c == commune {
			return nil
		}
	}
	return fmt.Errorf("%w: %q in %q", ErrUnknownCommune, commune, city)
}
