// Package pricing computes enrollment discounts and payment link selection.
// Everything here is a pure computation over already-verified state; it runs
// before the enrollment row is inserted.
package pricing

import (
	"skillras-be/internal/catalog"
	"skillras-be/internal/entity"
)

type Quote struct {
	Price              int64
	DiscountPercentage int64
	DiscountAmount     int64
	FinalPrice         int64
}

// Calculate applies the referral discount to the package price. The discount
// is floored (integer division) and can never push the final price below
// zero. A nil referral, or one with a zero percentage, yields a full-price
// quote.
func Calculate(pkg catalog.Package, referral *entity.ReferralCode) Quote {
	var pct int64
	if referral != nil {
		pct = referral.DiscountPercentage
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	discount := pkg.Price * pct / 100
	return Quote{
		Price:              pkg.Price,
		DiscountPercentage: pct,
		DiscountAmount:     discount,
		FinalPrice:         pkg.Price - discount,
	}
}

// PaymentLink picks the checkout URL for the selected package. A referral
// record carries up to three per-tier link slots; the slot matching the
// package wins, then the referral's primary link, then the package default.
func PaymentLink(pkg catalog.Package, referral *entity.ReferralCode) string {
	if referral == nil {
		return pkg.DefaultPaymentLink
	}
	if link := referral.LinkForPackage(pkg.Id); link != "" {
		return link
	}
	if referral.PaymentLink != "" {
		return referral.PaymentLink
	}
	return pkg.DefaultPaymentLink
}
