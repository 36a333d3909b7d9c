package dto

type ServiceChargeRequest struct {
	ServiceType string  `json:"serviceType" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

type DiscountRequest struct {
	Discount float64 `json:"discount"`
}

type PaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Method string  `json:"method" binding:"required"`
}

type RevenueResponse struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}
