package i18n

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brazil = language.MustParseRegion("BR")

// CurrencyFor returns BRL for Portuguese as spoken in Brazil and USD for
// every other tag.
func CurrencyFor(tag language.Tag) currency.Unit {
	base, _ := tag.Base()
	region, _ := tag.Region()
	if base.String() == "pt" && region == brazil {
		return currency.BRL
	}
	return currency.USD
}

var symbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.BRL: "R$ ",
}

// FormatCurrency formats amount in the currency for tag, with the tag's
// digit grouping and decimal separator.
func FormatCurrency(tag language.Tag, amount float64) string {
	unit := CurrencyFor(tag)
	p := message.NewPrinter(tag)
	return symbols[unit] + p.Sprintf("%.2f", amount)
}
