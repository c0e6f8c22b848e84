package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
)

// exportLimit caps the rows written to one workbook.
const exportLimit = 1000

var exportHeaders = []string{
	"ID", "Prénom", "Nom", "Titre", "Niveau d'expérience", "Disponibilité",
	"Pays", "Ville", "Commune", "Compétences", "Langues",
}

// Export writes the candidates matching filter to an xlsx workbook. Only the
// public fields are exported.
func (u *candidateUsecase) Export(ctx context.Context, userID string, filter domain.CandidateFilter) ([]byte, error) {
	profiles, _, err := u.repo.Search(ctx, normalizeCandidateFilter(filter), exportLimit, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	candidates := make([]domain.PublicCandidate, 0, len(profiles))
	for i := range profiles {
		candidates = append(candidates, toPublicCandidate(&profiles[i], 0))
	}

	data, err := buildCandidateWorkbook(candidates)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	u.secLogger.LogDataExport(ctx, userID, len(candidates))
	return data, nil
}

func buildCandidateWorkbook(candidates []domain.PublicCandidate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Candidats"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#B5651D"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, c := range candidates {
		row := []interface{}{
			c.ID,
			c.FirstName,
			c.LastInitial,
			c.Title,
			domain.OptionLabel(domain.ExperienceLevels, c.ExperienceLevel),
			domain.OptionLabel(domain.Availabilities, c.Availability),
			c.Country,
			c.City,
			c.Commune,
			strings.Join(c.Skills, ", "),
			strings.Join(c.Languages, ", "),
		}
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
