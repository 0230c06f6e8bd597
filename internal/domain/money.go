package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is a fixed-point currency amount stored as cents.
// It round-trips the Postgres NUMERIC(10,2) column as a decimal string
// ("15.99") and refuses amounts with more than two fraction digits, so no
// floating-point arithmetic ever touches a fee.
type Money int64

// ParseMoney parses a decimal string like "15.99", "12", or "12.5" into
// Money. Negative amounts and more than two fraction digits are rejected.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: amount is required", ErrValidation)
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: amount has more than two fraction digits", ErrValidation)
	}
	// Pad "5" → "50" so cents scale correctly.
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed amount %q", ErrValidation, s)
	}
	var f int64
	if frac != "00" {
		if f, err = strconv.ParseInt(frac, 10, 64); err != nil {
			return 0, fmt.Errorf("%w: malformed amount %q", ErrValidation, s)
		}
	}
	return Money(w*100 + f), nil
}

// String renders the amount as a decimal with exactly two fraction digits.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m/100, m%100)
}

// MarshalJSON renders Money as a JSON string ("15.99") rather than a number,
// so clients never see binary-float rounding.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

// UnmarshalJSON accepts either a JSON string ("15.99") or a bare number.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
