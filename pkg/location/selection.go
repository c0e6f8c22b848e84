package location

// Selection is the state of a country/city/commune picker.
// Changing a level clears every level below it.
type Selection struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Commune string `json:"commune"`
}

// Options are the choices available for the current selection.
type Options struct {
	Countries []string `json:"countries"`
	Cities    []string `json:"cities"`
	Communes  []string `json:"communes"`
}

// SelectCountry sets the country and clears city and commune.
func (s *Selection) SelectCountry(country string) {
	s.Country = country
	s.City = ""
	s.Commune = ""
}

// SelectCity sets the city and clears the commune.
func (s *Selection) SelectCity(city string) {
	s.City = city
	s.Commune = ""
}

// SelectCommune sets the commune.
func (s *Selection) SelectCommune(commune string) {
	s.Commune = commune
}

// Options projects the selection onto the table.
func (s Selection) Options() Options {
	return Options{
		Countries: Countries(),
		Cities:    Cities(s.Country),
		Communes:  Communes(s.Country, s.City),
	}
}

// Level names a picker in the cascade.
type Level string

const (
	LevelCountry Level = "country"
	LevelCity    Level = "city"
	LevelCommune Level = "commune"
)

// Apply changes one level of the selection. Unknown levels leave it untouched
// and report false.
func (s *Selection) Apply(level Level, value string) bool {
	switch level {
	case LevelCountry:
		s.SelectCountry(value)
	case LevelCity:
		s.SelectCity(value)
	case LevelCommune:
		s.SelectCommune(value)
	default:
		return false
	}
	return true
}
