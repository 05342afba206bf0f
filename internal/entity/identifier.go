package entity

// TaxIdentifier is a syntactic split of a gateway identifier into a debtor id and a tax category digit.
type TaxIdentifier struct {
	DebtorID string // may be empty for one-character identifiers
	Digit    int
}

// ClassifyIdentifier reports whether identifier looks like <debtor id><category digit>.
// It never touches the store, so a match is only a candidate. A lone digit is accepted
// with an empty debtor id; the lookup then finds nothing.
func ClassifyIdentifier(identifier string) (TaxIdentifier, bool) {
	if identifier == "" {
		return TaxIdentifier{}, false
	}

	last := identifier[len(identifier)-1]
	if last < '0' || last > '9' {
		return TaxIdentifier{}, false
	}

	digit := int(last - '0')
	if _, ok := TaxCategoryByDigit(digit); !ok {
		return TaxIdentifier{}, false
	}

	prefix := identifier[:len(identifier)-1]
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return TaxIdentifier{}, false
		}
	}

	return TaxIdentifier{DebtorID: prefix, Digit: digit}, true
}
