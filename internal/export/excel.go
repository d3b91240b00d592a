// Package export renders normalized profiles to spreadsheet and PDF buffers.
package export

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"profilescout-engine/internal/domain"
)

const sheetName = "LinkedIn Profiles"

type column struct {
	header string
	width  float64
	value  func(domain.NormalizedProfile) any
}

func blank(domain.NormalizedProfile) any { return "" }

// The ATS import template this sheet mirrors is wide; most columns have no
// scraped equivalent and stay blank, but none are omitted.
var columns = []column{
	{"Salutation", 15, blank},
	{"First Name", 20, func(p domain.NormalizedProfile) any { f, _ := domain.SplitFullName(p.FullName); return f }},
	{"Middle Name", 15, blank},
	{"Last Name", 20, func(p domain.NormalizedProfile) any { _, l := domain.SplitFullName(p.FullName); return l }},
	{"Nick Name", 15, blank},
	{"Email", 30, func(p domain.NormalizedProfile) any { return p.Email }},
	{"Email Address1", 30, blank},
	{"Mobile Number", 20, func(p domain.NormalizedProfile) any { return p.Phone }},
	{"Home Phone Number", 20, blank},
	{"Other Phone", 20, blank},
	{"Work Phone Number", 20, blank},
	{"Clearence", 15, blank},
	{"Clearence Type", 15, blank},
	{"Work Authorization", 20, blank},
	{"Work Authorization Expiry", 25, blank},
	{"Linked In", 40, func(p domain.NormalizedProfile) any { return p.ProfileURL }},
	{"Video Reference", 20, blank},
	{"Skype ID", 20, blank},
	{"Job Title", 40, func(p domain.NormalizedProfile) any { return p.Title }},
	{"Postal Code", 15, blank},
	{"Address", 40, blank},
	{"Country", 20, func(p domain.NormalizedProfile) any { _, _, c := domain.SplitLocation(p.Location); return c }},
	{"State", 20, func(p domain.NormalizedProfile) any { _, s, _ := domain.SplitLocation(p.Location); return s }},
	{"City", 20, func(p domain.NormalizedProfile) any { c, _, _ := domain.SplitLocation(p.Location); return c }},
	{"Source", 20, func(domain.NormalizedProfile) any { return "LinkedIn" }},
	{"Experience", 50, func(p domain.NormalizedProfile) any { return p.Experience }},
	{"Experience in Months", 20, func(p domain.NormalizedProfile) any { return p.ExperienceInMonths }},
	{"Ownership", 15, blank},
	{"Status", 15, blank},
	{"Created By", 20, blank},
	{"Primary Skills", 40, func(p domain.NormalizedProfile) any { return p.Skills }},
	{"Additional Comments", 50, blank},
	{"Resume", 20, blank},
	{"Passport", 20, blank},
	{"Current Company", 30, func(p domain.NormalizedProfile) any { return p.Company }},
	{"Current CTC", 15, blank},
	{"Expected Pay", 15, blank},
	{"Notice Period", 15, blank},
	{"Notice Serving Date", 20, blank},
	{"Pan Card Number", 20, blank},
	{"Race/Ethnicity", 15, blank},
	{"Tax Terms", 15, blank},
	{"Referred By", 20, blank},
	{"Twitter Profile Url", 40, blank},
	{"Facebook Profile Url", 40, blank},
	{"LinkedIn Profile URL", 40, func(p domain.NormalizedProfile) any { return p.ProfileURL }},
	{"Applicant Group", 20, blank},
	{"custom Applicant Status", 25, blank},
	{"Skills", 40, func(p domain.NormalizedProfile) any { return p.Skills }},
	{"Function", 20, blank},
	{"SSN", 15, blank},
	{"Date Of Birth", 20, blank},
	{"GPA", 10, blank},
	{"Notes", 50, func(p domain.NormalizedProfile) any { return p.Summary }},
	{"Relocation", 15, blank},
	{"Gender", 15, blank},
	{"Disability", 15, blank},
	{"Technology", 25, blank},
	{"Industry", 25, func(p domain.NormalizedProfile) any { return p.Industry }},
	{"Veteran Status", 15, blank},
	{"Veteran Type", 15, blank},
}

// Excel renders the fixed wide-column sheet with a styled header row.
// An empty profile list is an error, not a header-only workbook.
func Excel(profiles []domain.NormalizedProfile) ([]byte, error) {
	if len(profiles) == 0 {
		return nil, errors.New("no profiles to export")
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headers := make([]any, len(columns))
	for i, c := range columns {
		headers[i] = c.header
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, c.width); err != nil {
			return nil, err
		}
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6F3FF"}},
	})
	if err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	for rowIdx, p := range profiles {
		row := make([]any, len(columns))
		for i, c := range columns {
			row[i] = c.value(p)
		}
		cell := fmt.Sprintf("A%d", rowIdx+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
