package planilla

// All the ratios of the ledger go through these helpers so that the
// zero-denominator policy lives in one place: percentages default to 0 and
// performance indices default to 1.

// ratio returns num/den, or fallback when den is zero.
func ratio(num, den Money, fallback float64) float64 {
	if den.IsZero() {
		return fallback
	}
	return num.value.Div(den.value).InexactFloat64()
}

// share returns part as a percentage of whole, 0 when whole is zero.
func share(part, whole Money) Percent {
	if whole.IsZero() {
		return 0
	}
	return Percent(part.value.Mul(hundred).Div(whole.value).InexactFloat64())
}

// index returns earned/reference as a performance index, 1 when reference is zero.
func index(earned, reference Money) Index {
	return Index(ratio(earned, reference, 1))
}
