// Package dto holds the data transfer objects exchanged between services
// and repositories.
package dto

import "github.com/shopspring/decimal"

func init() {
	// Amounts are written as JSON numbers for clients and stored JSON columns.
	decimal.MarshalJSONWithoutQuotes = true
}
