package domain

// Option is a value/label pair for selects.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var JobCategories = []Option{
	{"hotellerie", "Hôtellerie"},
	{"restauration", "Restauration"},
	{"cuisine", "Cuisine"},
	{"service_en_salle", "Service en salle"},
	{"reception", "Réception"},
	{"housekeeping", "Housekeeping"},
	{"bar", "Bar"},
	{"evenementiel", "Événementiel"},
	{"tourisme", "Tourisme"},
}

var ContractTypes = []Option{
	{"cdi", "CDI"},
	{"cdd", "CDD"},
	{"stage", "Stage"},
	{"saisonnier", "Saisonnier"},
	{"freelance", "Freelance"},
}

var ExperienceLevels = []Option{
	{"debutant", "Débutant"},
	{"junior", "Junior (1-2 ans)"},
	{"intermediaire", "Intermédiaire (3-5 ans)"},
	{"senior", "Senior (5-10 ans)"},
	{"expert", "Expert (10 ans et +)"},
}

var Availabilities = []Option{
	{"immediate", "Immédiate"},
	{"one_month", "Sous 1 mois"},
	{"three_months", "Sous 3 mois"},
	{"negotiable", "À négocier"},
}

var CompanyTypes = []Option{
	{"hotel", "Hôtel"},
	{"restaurant", "Restaurant"},
	{"bar", "Bar / Lounge"},
	{"traiteur", "Traiteur"},
	{"resort", "Resort"},
	{"agence_evenementielle", "Agence événementielle"},
	{"autre", "Autre"},
}

var CompanySizes = []Option{
	{"1-10", "1 à 10 employés"},
	{"11-50", "11 à 50 employés"},
	{"51-200", "51 à 200 employés"},
	{"200+", "Plus de 200 employés"},
}

var SkillLevels = []Option{
	{"debutant", "Débutant"},
	{"intermediaire", "Intermédiaire"},
	{"avance", "Avancé"},
	{"expert", "Expert"},
}

var JobStatuses = []Option{
	{string(JobStatusDraft), "Brouillon"},
	{string(JobStatusActive), "Active"},
	{string(JobStatusClosed), "Clôturée"},
}

// MetaOptions is everything the filters and forms need in one payload.
type MetaOptions struct {
	Categories       []Option `json:"categories"`
	ContractTypes    []Option `json:"contract_types"`
	ExperienceLevels []Option `json:"experience_levels"`
	Availabilities   []Option `json:"availabilities"`
	CompanyTypes     []Option `json:"company_types"`
	CompanySizes     []Option `json:"company_sizes"`
	SkillLevels      []Option `json:"skill_levels"`
	JobStatuses      []Option `json:"job_statuses"`
}

func AllOptions() MetaOptions {
	return MetaOptions{
		Categories:       JobCategories,
		ContractTypes:    ContractTypes,
		ExperienceLevels: ExperienceLevels,
		Availabilities:   Availabilities,
		CompanyTypes:     CompanyTypes,
		CompanySizes:     CompanySizes,
		SkillLevels:      SkillLevels,
		JobStatuses:      JobStatuses,
	}
}

// HasOption reports whether value is one of opts.
func HasOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// OptionLabel returns the label for value, or value itself.
func OptionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
