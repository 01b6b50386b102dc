package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"skillras-be/internal/catalog"
)

func TestReferralCodeValidateAt(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)
	maxUsage := 10

	base := ReferralCode{
		Code:               "TESTCODE",
		CodeType:           CodeTypeReferral,
		DiscountPercentage: 20,
		IsActive:           true,
	}

	t.Run("active open-ended code is valid", func(t *testing.T) {
		c := base
		assert.NoError(t, c.ValidateAt(now))
	})

	t.Run("inactive code", func(t *testing.T) {
		c := base
		c.IsActive = false
		assert.ErrorIs(t, c.ValidateAt(now), ErrCodeInactive)
	})

	t.Run("expired code", func(t *testing.T) {
		c := base
		c.ValidUntil = &past
		assert.ErrorIs(t, c.ValidateAt(now), ErrCodeExpired)
	})

	t.Run("future expiry still valid", func(t *testing.T) {
		c := base
		c.ValidUntil = &future
		assert.NoError(t, c.ValidateAt(now))
	})

	t.Run("exhausted code", func(t *testing.T) {
		c := base
		c.MaxUsage = &maxUsage
		c.CurrentUsage = 10
		assert.ErrorIs(t, c.ValidateAt(now), ErrCodeExhausted)
	})

	t.Run("one use remaining", func(t *testing.T) {
		c := base
		c.MaxUsage = &maxUsage
		c.CurrentUsage = 9
		assert.NoError(t, c.ValidateAt(now))
	})

	t.Run("inactive wins over expired", func(t *testing.T) {
		c := base
		c.IsActive = false
		c.ValidUntil = &past
		assert.ErrorIs(t, c.ValidateAt(now), ErrCodeInactive)
	})

	t.Run("zero discount is still valid", func(t *testing.T) {
		c := base
		c.DiscountPercentage = 0
		assert.NoError(t, c.ValidateAt(now))
	})
}

func TestLinkForPackage(t *testing.T) {
	c := ReferralCode{
		PaymentLink:  "https://pay.example.com/s",
		PaymentLink2: "https://pay.example.com/p",
		PaymentLink3: "https://pay.example.com/e",
	}

	assert.Equal(t, c.PaymentLink, c.LinkForPackage(catalog.PackageStarter))
	assert.Equal(t, c.PaymentLink2, c.LinkForPackage(catalog.PackageProfessional))
	assert.Equal(t, c.PaymentLink3, c.LinkForPackage(catalog.PackageEnterprise))
	assert.Empty(t, c.LinkForPackage("platinum"))

	empty := ReferralCode{}
	assert.Empty(t, empty.LinkForPackage(catalog.PackageStarter))
}
