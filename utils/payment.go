package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateCardNumber accepts exactly 16 digits, spaces allowed.
func ValidateCardNumber(number string) bool {
	cleaned := strings.ReplaceAll(number, " ", "")
	return cardNumberPattern.MatchString(cleaned)
}

func ValidateCVV(cvv string) bool {
	return cvvPattern.MatchString(cvv)
}

// ValidateExpiry rejects malformed months and cards expiring before
// the current month.
func ValidateExpiry(month, year string) bool {
	expMonth, err := strconv.Atoi(month)
	if err != nil {
		return false
	}
	expYear, err := strconv.Atoi(year)
	if err != nil {
		return false
	}

	if expMonth < 1 || expMonth > 12 {
		return false
	}

	now := time.Now()
	if expYear < now.Year() {
		return false
	}
	if expYear == now.Year() && expMonth < int(now.Month()) {
		return false
	}
	return true
}

// MaskCardNumber keeps the last four digits for receipts and logs.
func MaskCardNumber(number string) string {
	cleaned := strings.ReplaceAll(number, " ", "")
	if len(cleaned) < 4 {
		return "****"
	}
	return "**** **** **** " + cleaned[len(cleaned)-4:]
}
