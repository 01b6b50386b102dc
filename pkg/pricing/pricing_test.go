package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillras-be/internal/catalog"
	"skillras-be/internal/entity"
)

func TestCalculateBounds(t *testing.T) {
	prices := []int64{0, 1, 99, 4800, 9600, 19200}
	percentages := []int64{0, 1, 20, 50, 99, 100}

	for _, price := range prices {
		for _, pct := range percentages {
			ref := &entity.ReferralCode{DiscountPercentage: pct}
			q := Calculate(catalog.Package{Price: price}, ref)

			assert.Equal(t, price*pct/100, q.DiscountAmount)
			assert.Equal(t, price-q.DiscountAmount, q.FinalPrice)
			assert.GreaterOrEqual(t, q.FinalPrice, int64(0))
			assert.LessOrEqual(t, q.FinalPrice, price)
		}
	}
}

func TestCalculateNilReferral(t *testing.T) {
	q := Calculate(catalog.Package{Price: 9600}, nil)
	assert.Equal(t, int64(0), q.DiscountAmount)
	assert.Equal(t, int64(9600), q.FinalPrice)
}

func TestCalculateZeroDiscountReferralIsValid(t *testing.T) {
	q := Calculate(catalog.Package{Price: 9600}, &entity.ReferralCode{DiscountPercentage: 0})
	assert.Equal(t, int64(0), q.DiscountAmount)
	assert.Equal(t, int64(9600), q.FinalPrice)
}

func TestCalculateClampsPercentage(t *testing.T) {
	q := Calculate(catalog.Package{Price: 100}, &entity.ReferralCode{DiscountPercentage: 150})
	assert.Equal(t, int64(0), q.FinalPrice)

	q = Calculate(catalog.Package{Price: 100}, &entity.ReferralCode{DiscountPercentage: -5})
	assert.Equal(t, int64(100), q.FinalPrice)
}

func TestProfessionalEndToEnd(t *testing.T) {
	// professional at 9600 with a 20% referral: 1920 off, 7680 due,
	// link slot 2 selected.
	pkg, ok := catalog.FindPackage(catalog.PackageProfessional)
	assert.True(t, ok)
	assert.Equal(t, int64(9600), pkg.Price)

	ref := &entity.ReferralCode{
		DiscountPercentage: 20,
		PaymentLink:        "https://rzp.io/starter-slot",
		PaymentLink2:       "https://rzp.io/professional-slot",
		PaymentLink3:       "https://rzp.io/enterprise-slot",
	}

	q := Calculate(pkg, ref)
	assert.Equal(t, int64(1920), q.DiscountAmount)
	assert.Equal(t, int64(7680), q.FinalPrice)
	assert.Equal(t, "https://rzp.io/professional-slot", PaymentLink(pkg, ref))
}

func TestPaymentLinkFallbacks(t *testing.T) {
	pkg, _ := catalog.FindPackage(catalog.PackageEnterprise)

	t.Run("no referral uses package default", func(t *testing.T) {
		assert.Equal(t, pkg.DefaultPaymentLink, PaymentLink(pkg, nil))
	})

	t.Run("empty slot falls back to primary", func(t *testing.T) {
		ref := &entity.ReferralCode{PaymentLink: "https://rzp.io/primary"}
		assert.Equal(t, "https://rzp.io/primary", PaymentLink(pkg, ref))
	})

	t.Run("referral without links uses package default", func(t *testing.T) {
		assert.Equal(t, pkg.DefaultPaymentLink, PaymentLink(pkg, &entity.ReferralCode{}))
	})
}
