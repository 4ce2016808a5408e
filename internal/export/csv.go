// Package export renders lawyer surveys as a spreadsheet-friendly CSV document.
package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/legalpulse/survey-api/internal/models"
)

// BOM marks the document as UTF-8 for spreadsheet applications
const BOM = "\ufeff"

// DateLayout formats the record date column
const DateLayout = "2006-01-02"

// ListSeparator joins set-valued fields within one cell
const ListSeparator = "; "

// Header is the fixed column set of the lawyer survey export
var Header = []string{
	"ID",
	"التاريخ",
	"الوضع المهني",
	"سنوات الخبرة",
	"التخصصات",
	"اللغات",
	"الاستشارات الكتابية",
	"القضايا العمالية",
	"القضايا الأسرية",
	"المقابل الشهري",
	"الخصم المقبول",
	"السعر الحالي",
	"الأهم",
	"التحدي الأكبر",
	"مستوى الاهتمام",
	"الاسم",
	"الجوال",
	"البريد الإلكتروني",
	"المدينة",
	"الحالة",
}

// Row renders one record in Header order
func Row(r *models.LawyerSurvey) []string {
	return []string{
		r.ID,
		r.CreatedAt.UTC().Format(DateLayout),
		r.ProfessionalStatus,
		r.YearsExperience,
		strings.Join(r.Specializations, ListSeparator),
		strings.Join(r.Languages, ListSeparator),
		strconv.Itoa(r.WrittenConsultations),
		strconv.Itoa(r.LaborCases),
		strconv.Itoa(r.FamilyCases),
		strconv.FormatFloat(r.MonthlyCompensation, 'f', -1, 64),
		r.DiscountAcceptance,
		r.CurrentConsultationPrice,
		r.MostImportant,
		optional(r.BiggestChallenge),
		r.InterestLevel,
		optional(r.Name),
		optional(r.Mobile),
		optional(r.Email),
		optional(r.City),
		string(r.Status),
	}
}

// WriteLawyerCSV writes the BOM, the header row and one row per record
func WriteLawyerCSV(w io.Writer, records []*models.LawyerSurvey) error {
	if _, err := io.WriteString(w, BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LawyerCSV renders the export into memory
func LawyerCSV(records []*models.LawyerSurvey) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLawyerCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
