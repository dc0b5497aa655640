package dto

import "github.com/shopspring/decimal"

func init() {
	// The front end reads prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
