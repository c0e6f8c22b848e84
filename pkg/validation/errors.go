package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps json field names to the labels shown next to form inputs
var FieldLabels = map[string]string{
	// Account
	"email":            "Email",
	"phone":            "Téléphone",
	"password":         "Mot de passe",
	"confirm_password": "Confirmation du mot de passe",
	"role":             "Type de compte",
	"accept_terms":     "Conditions d'utilisation",

	// Candidate
	"first_name":         "Prénom",
	"last_name":          "Nom",
	"title":              "Titre",
	"bio":                "Présentation",
	"skills":             "Compétences",
	"languages":          "Langues",
	"experience_level":   "Niveau d'expérience",
	"availability":       "Disponibilité",
	"salary_expectation": "Prétention salariale",

	// Employer
	"company_name": "Nom de l'entreprise",
	"company_type": "Type d'établissement",
	"company_size": "Taille de l'entreprise",
	"address":      "Adresse",
	"website":      "Site web",
	"description":  "Description",

	// Location
	"country": "Pays",
	"city":    "Ville",
	"commune": "Commune",

	// Sub-records and jobs
	"position":      "Poste",
	"employer":      "Employeur",
	"start_date":    "Date de début",
	"end_date":      "Date de fin",
	"school":        "Établissement",
	"degree":        "Diplôme",
	"name":          "Nom",
	"issuer":        "Organisme",
	"level":         "Niveau",
	"category":      "Catégorie",
	"contract_type": "Type de contrat",
	"salary_min":    "Salaire minimum",
	"salary_max":    "Salaire maximum",
	"requirements":  "Exigences",
	"status":        "Statut",
	"field":         "Domaine",
	"issued_at":     "Date d'obtention",
	"expires_at":    "Date d'expiration",
	"url":           "Lien",
	"file":          "Fichier",
	"step":          "Étape",
}

// FieldErrors converts validator errors into json-field → message pairs.
// Non-validation errors yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		if _, exists := out[field]; exists {
			continue
		}
		out[field] = formatSingleError(e)
	}
	return out
}

func formatSingleError(e validator.FieldError) string {
	label := Label(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required", "required_if", "required_with":
		return fmt.Sprintf("%s : champ obligatoire", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s : %s caractères minimum", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s : au moins %s élément(s)", label, param)
		}
		return fmt.Sprintf("%s : minimum %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s : %s caractères maximum", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s : au plus %s élément(s)", label, param)
		}
		return fmt.Sprintf("%s : maximum %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s : doit être l'une des valeurs %s", label, strings.ReplaceAll(param, " ", ", "))
	case "email":
		return fmt.Sprintf("%s : adresse email invalide", label)
	case "url":
		return fmt.Sprintf("%s : URL invalide", label)
	case "eqfield":
		return fmt.Sprintf("%s : doit correspondre à %s", label, Label(jsonName(param)))
	case "gtefield":
		return fmt.Sprintf("%s : doit être supérieur ou égal à %s", label, Label(jsonName(param)))
	case "eq":
		return fmt.Sprintf("%s : doit être accepté", label)
	case "valid_name":
		return fmt.Sprintf("%s : lettres, espaces, apostrophes et tirets uniquement", label)
	case "valid_phone":
		return fmt.Sprintf("%s : numéro invalide (8 à 15 chiffres, indicatif facultatif)", label)
	case "no_emoji":
		return fmt.Sprintf("%s : les emojis ne sont pas autorisés", label)
	default:
		return fmt.Sprintf("%s : valeur invalide (%s)", label, e.Tag())
	}
}

// Label returns the display label for a json field name.
func Label(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return strings.ReplaceAll(field, "_", " ")
}

// jsonName turns a struct field reference (ConfirmPassword) into its json form (confirm_password).
func jsonName(structField string) string {
	var b strings.Builder
	for i, r := range structField {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
