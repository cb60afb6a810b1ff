package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// Uncategorized is the category of every row the classifier could not label.
const Uncategorized = "Uncategorized"

// RejectionReason says why a row was counted as failed.
type RejectionReason string

const (
	RejectionInvalidDate   RejectionReason = "InvalidDate"
	RejectionInvalidAmount RejectionReason = "InvalidAmount"
	RejectionMalformedRow  RejectionReason = "MalformedRow"
	RejectionInternal      RejectionReason = "Internal"
)

var (
	errInvalidDate   = errors.New("invalid date")
	errInvalidAmount = errors.New("invalid amount")
	errNULByte       = errors.New("field contains a NUL byte")
)

// maxAmount is the first magnitude a numeric(12,2) column cannot hold.
var maxAmount = decimal.New(1, 10)

// NormalizedTransaction is a validated row ready for storage.
type NormalizedTransaction struct {
	OwnerID     string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
}

// RowResult is the outcome of normalizing one row: a Transaction or a Reason.
type RowResult struct {
	Line        int
	Transaction *NormalizedTransaction
	Reason      RejectionReason
	Err         error
}

func (r RowResult) OK() bool {
	return r.Transaction != nil
}

// Categorizer labels a description. Implementations never fail; they fall
// back to Uncategorized.
type Categorizer interface {
	Categorize(ctx context.Context, description string) string
}

type Normalizer struct {
	categorizer Categorizer
}

// NewNormalizer accepts a nil categorizer, in which case every row is Uncategorized.
func NewNormalizer(categorizer Categorizer) *Normalizer {
	return &Normalizer{categorizer: categorizer}
}

func (n *Normalizer) Normalize(ctx context.Context, raw RawRecord, ownerID string) (result RowResult) {
	result.Line = raw.Line
	defer func() {
		if r := recover(); r != nil {
			result = RowResult{
				Line:   raw.Line,
				Reason: RejectionInternal,
				Err:    fmt.Errorf("normalize panic: %v", r),
			}
		}
	}()

	if raw.Err != nil {
		result.Reason = RejectionMalformedRow
		result.Err = raw.Err
		return result
	}
	// Postgres text columns cannot hold NUL.
	if strings.ContainsRune(raw.Date+raw.Description+raw.Amount, 0) {
		result.Reason = RejectionMalformedRow
		result.Err = errNULByte
		return result
	}

	date, err := ParseDate(raw.Date)
	if err != nil {
		result.Reason = RejectionInvalidDate
		result.Err = err
		return result
	}

	amount, err := ParseAmount(raw.Amount)
	if err != nil {
		result.Reason = RejectionInvalidAmount
		result.Err = err
		return result
	}

	description := strings.TrimSpace(raw.Description)
	category := Uncategorized
	if n.categorizer != nil {
		category = n.categorizer.Categorize(ctx, description)
	}

	result.Transaction = &NormalizedTransaction{
		OwnerID:     ownerID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
	}
	return result
}

// dateLayouts are tried in order, so ISO forms win and slash dates are read month first.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"01/02/06",
	"1/2/06",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
	"2-Jan-06",
	"20060102",
}

// ParseDate parses text into a calendar date at UTC midnight.
func ParseDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if !strings.ContainsFunc(text, unicode.IsDigit) {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, text)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return checkYear(text, t)
		}
	}

	// Bare numbers other than yyyymmdd are not dates.
	if strings.IndexFunc(text, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, text)
	}

	t, err := dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, text)
	}
	return checkYear(text, t)
}

// checkYear rejects parses that never saw a year, such as "10:30" or "3.5",
// which come back as year 0.
func checkYear(text string, t time.Time) (time.Time, error) {
	if t.Year() < 1 {
		return time.Time{}, fmt.Errorf("%w: %q has no year", errInvalidDate, text)
	}
	return truncateToDate(t), nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var amountReplacer = strings.NewReplacer(
	"$", "",
	"\u20ac", "",
	"\u00a3", "",
	"\u20b9", "",
	",", "",
	" ", "",
	"\u00a0", "",
)

// ParseAmount strips currency symbols and thousands separators before parsing.
// Blank text is zero. A parenthesized value is negative.
func ParseAmount(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Zero, nil
	}

	cleaned := amountReplacer.Replace(trimmed)
	negative := false
	if len(cleaned) > 2 && strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", errInvalidAmount, text)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errInvalidAmount, text)
	}
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %q out of range", errInvalidAmount, text)
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}
