package domain

// DocumentKind distinguishes the two Brazilian taxpayer identifier formats.
type DocumentKind string

const (
	DocumentCPF  DocumentKind = "cpf"  // individual, 11 digits
	DocumentCNPJ DocumentKind = "cnpj" // organization, 14 digits
)

// NormalizeDocument strips every non-digit character from raw
// (dots, dashes, slashes, parentheses, spaces). It never fails and is
// idempotent, so normalized values pass through unchanged.
func NormalizeDocument(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			out = append(out, raw[i])
		}
	}
	return string(out)
}

// IsValidCPF reports whether digits is a checksum-valid CPF. It fails
// closed: anything other than exactly 11 digits, or a degenerate
// all-identical sequence such as "11111111111", is invalid.
func IsValidCPF(digits string) bool {
	if len(digits) != 11 || !allDigits(digits) || allSame(digits) {
		return false
	}
	// First check digit: weights 10..2 over the first 9 digits.
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	if checkDigit(sum) != int(digits[9]-'0') {
		return false
	}
	// Second check digit: weights 11..2 over the first 10 digits.
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	return checkDigit(sum) == int(digits[10]-'0')
}

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValidCNPJ reports whether digits is a checksum-valid CNPJ, with the
// same fail-closed behavior as IsValidCPF for malformed input.
func IsValidCNPJ(digits string) bool {
	if len(digits) != 14 || !allDigits(digits) || allSame(digits) {
		return false
	}
	sum := 0
	for i, w := range cnpjWeightsFirst {
		sum += int(digits[i]-'0') * w
	}
	if checkDigit(sum) != int(digits[12]-'0') {
		return false
	}
	sum = 0
	for i, w := range cnpjWeightsSecond {
		sum += int(digits[i]-'0') * w
	}
	return checkDigit(sum) == int(digits[13]-'0')
}

// ClassifyDocument normalizes raw and determines whether it is a valid
// CPF or CNPJ. Values matching neither length/checksum rule return
// ErrInvalidDocument. Only values returned by this function are ever
// persisted in a document field.
func ClassifyDocument(raw string) (string, DocumentKind, error) {
	digits := NormalizeDocument(raw)
	switch {
	case IsValidCPF(digits):
		return digits, DocumentCPF, nil
	case IsValidCNPJ(digits):
		return digits, DocumentCNPJ, nil
	default:
		return "", "", ErrInvalidDocument
	}
}

// checkDigit maps a weighted sum to its modulo-11 check digit:
// remainder < 2 yields 0, otherwise 11 - remainder.
func checkDigit(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
