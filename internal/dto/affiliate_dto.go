package dto

// --- Affiliate DTOs ---

type AffiliateEarningsRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AffiliateCodeEarningDTO struct {
	Code                 string `json:"code"`
	CodeType             string `json:"code_type"`
	CommissionPercentage int64  `json:"commission_percentage"`
	TimesUsed            int64  `json:"times_used"`
	TotalSales           int64  `json:"total_sales"`
	TotalEarnings        int64  `json:"total_earnings"`
}

type AffiliateEarningsResponse struct {
	ReferrerEmail string                    `json:"referrer_email"`
	Codes         []AffiliateCodeEarningDTO `json:"codes"`
	TotalSales    int64                     `json:"total_sales"`
	TotalEarnings int64                     `json:"total_earnings"`
}
