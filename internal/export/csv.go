// Package export renders a filtered ledger slice as delimited text.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/smartexpense/expense-manager/models"
)

// Header is the fixed first row of every export.
const Header = "Date,Category,Type,Amount (INR),Description"

// enINDate is day/month/year without zero padding, e.g. 5/1/2024.
const enINDate = "2/1/2006"

// Filename builds the attachment name from the 3-letter month abbreviation
// and 4-digit year, e.g. expenses_Jan_2024.csv.
func Filename(month, year int) string {
	return fmt.Sprintf("expenses_%s_%d.csv", time.Month(month).String()[:3], year)
}

// SanitizeDescription applies the deliberate lossy escaping: literal commas
// become semicolons and embedded newlines become single spaces. This is not
// full CSV quoting and must stay byte-compatible with existing consumers.
func SanitizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, ",", ";")
	return strings.ReplaceAll(desc, "\n", " ")
}

// CSV renders the header row plus one line per transaction. Amounts are
// written unmodified; dates use the en-IN day/month/year format.
func CSV(transactions []models.Transaction) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, t := range transactions {
		b.WriteString(t.Date.Format(enINDate))
		b.WriteByte(',')
		b.WriteString(t.CategoryName)
		b.WriteByte(',')
		b.WriteString(t.CategoryType)
		b.WriteByte(',')
		b.WriteString(t.Amount.String())
		b.WriteByte(',')
		b.WriteString(SanitizeDescription(t.Description))
		b.WriteByte('\n')
	}
	return b.String()
}
