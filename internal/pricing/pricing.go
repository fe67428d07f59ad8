// Package pricing computes quotation prices for the services offered by the
// shop. All arithmetic is decimal; results are formatted currency strings.
package pricing

import (
	"strings"

	"github.com/bekabe-press/api/internal/enum"
	"github.com/shopspring/decimal"
)

// InvalidInput is rendered in the price fields when a submitted value does
// not parse as a number.
const InvalidInput = "Invalid input."

var (
	sqFootPerSqInch = decimal.NewFromInt(144)

	// Per-square-unit rates by service. DTF is priced per sheet instead.
	areaRates = map[string]decimal.Decimal{
		enum.ServiceSticker:      decimal.RequireFromString("2.2"),
		enum.ServiceBanner:       decimal.RequireFromString("2.5"),
		enum.ServiceTransparent:  decimal.RequireFromString("1.9"),
		enum.ServiceOneWayVision: decimal.RequireFromString("4.2"),
	}

	dtfRateA4 = decimal.NewFromInt(7)
	dtfRateA3 = decimal.NewFromInt(14)
)

// Request is one submission of the quotation form. Numeric fields arrive as
// the raw form strings; parsing happens here so that a bad value can poison
// every displayed price at once, the way the legacy page behaved.
type Request struct {
	ServiceType string
	Qty         string
	Height      string
	Width       string
	Unit        string // "ft" or "in"
	DTFSize     string // "A4" or "A3"
}

// Quote carries the formatted price strings shown on the quotation page.
// Only the submitted service's field is set. The page has no field for
// onewayvision, so that price is computed and dropped (legacy quirk).
type Quote struct {
	StickerPrice     string
	DTFPrice         string
	BannerPrice      string
	TransparentPrice string
}

// Calculate prices one quotation request.
func Calculate(req Request) Quote {
	var q Quote

	service := req.ServiceType
	if service == "" {
		service = enum.ServiceSticker
	}

	switch service {
	case enum.ServiceDTF:
		qty, err := decimal.NewFromString(req.Qty)
		if err != nil {
			return invalidQuote()
		}
		q.DTFPrice = FormatGHC(DTFPrice(qty, req.DTFSize))

	case enum.ServiceSticker, enum.ServiceBanner, enum.ServiceTransparent, enum.ServiceOneWayVision:
		qty, err1 := decimal.NewFromString(req.Qty)
		height, err2 := decimal.NewFromString(req.Height)
		width, err3 := decimal.NewFromString(req.Width)
		if err1 != nil || err2 != nil || err3 != nil {
			return invalidQuote()
		}
		price := AreaPrice(service, qty, height, width, req.Unit)
		switch service {
		case enum.ServiceSticker:
			q.StickerPrice = FormatGHC(price)
		case enum.ServiceBanner:
			q.BannerPrice = FormatGHC(price)
		case enum.ServiceTransparent:
			q.TransparentPrice = FormatGHC(price)
		}
	}

	return q
}

// AreaPrice prices a dimensioned service: rate x qty x height x width, with
// inch dimensions converted to square feet.
func AreaPrice(service string, qty, height, width decimal.Decimal, unit string) decimal.Decimal {
	price := areaRates[service].Mul(qty).Mul(height).Mul(width)
	if unit == enum.UnitInches {
		price = price.Div(sqFootPerSqInch)
	}
	return price
}

// DTFPrice prices DTF sheets: 14/sheet for A3, 7/sheet otherwise.
func DTFPrice(qty decimal.Decimal, size string) decimal.Decimal {
	if size == enum.DTFSizeA3 {
		return dtfRateA3.Mul(qty)
	}
	return dtfRateA4.Mul(qty)
}

// FormatGHC renders an amount as "GHC 1,234.5": one decimal place,
// thousands-separated.
func FormatGHC(d decimal.Decimal) string {
	s := d.StringFixed(1)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "GHC " + b.String() + "." + fracPart
	if neg {
		out = "GHC -" + b.String() + "." + fracPart
	}
	return out
}

func invalidQuote() Quote {
	return Quote{
		StickerPrice:     InvalidInput,
		DTFPrice:         InvalidInput,
		BannerPrice:      InvalidInput,
		TransparentPrice: InvalidInput,
	}
}
