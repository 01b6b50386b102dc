package entity

// AffiliateCodeEarning aggregates completed enrollments for one referral code.
// TotalEarnings is commission in paise: sum(final_price * commission_pct / 100).
type AffiliateCodeEarning struct {
	Code                 string
	CodeType             CodeType
	CommissionPercentage int64
	TimesUsed            int64
	TotalSales           int64
	TotalEarnings        int64
}

// AffiliateSummary is the rolled-up view for a referrer email.
type AffiliateSummary struct {
	ReferrerEmail string
	Codes         []AffiliateCodeEarning
	TotalSales    int64
	TotalEarnings int64
}
