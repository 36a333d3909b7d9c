package controllers

import (
	"fmt"
	"time"

	"orionhotel/dto"
	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{billing: billing}
}

// GetBills godoc
// @Summary      List bills
// @Tags         Billing
// @Param        status query string false "UNPAID, PARTIAL, PAID"
// @Security     BearerAuth
// @Router       /bills [get]
func (ctrl *BillingController) GetBills(c *gin.Context) {
	bills, err := ctrl.billing.ListBills(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	page, current, limit := dto.Paginate(bills, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	response.SuccessWithPagination(c, page, current, limit, len(bills))
}

func (ctrl *BillingController) GetOutstanding(c *gin.Context) {
	bills, err := ctrl.billing.OutstandingBalances(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bills)
}

func (ctrl *BillingController) GetBill(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	bill, err := ctrl.billing.BillDetail(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bill)
}

// GetGuestBill trả hóa đơn đang mở của khách
func (ctrl *BillingController) GetGuestBill(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	bill, err := ctrl.billing.GetOpenBill(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bill)
}

func (ctrl *BillingController) GenerateBill(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	bill, err := ctrl.billing.GenerateBillForGuest(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bill)
}

// AddServiceCharge godoc
// @Summary      Add a service charge to the guest's open bill
// @Tags         Billing
// @Param        id path int true "Guest ID"
// @Param        body body dto.ServiceChargeRequest true "Charge"
// @Security     BearerAuth
// @Router       /guests/{id}/bill/charges [post]
func (ctrl *BillingController) AddServiceCharge(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.ServiceChargeRequest
	if !bindJSON(c, &req) {
		return
	}
	bill, err := ctrl.billing.AddServiceCharge(c.Request.Context(), id, req.ServiceType, req.Amount)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bill)
}

func (ctrl *BillingController) ApplyDiscount(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.DiscountRequest
	if !bindJSON(c, &req) {
		return
	}
	bill, err := ctrl.billing.ApplyDiscount(c.Request.Context(), id, req.Discount)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bill)
}

// ProcessPayment godoc
// @Summary      Record a payment
// @Tags         Billing
// @Param        id path int true "Guest ID"
// @Param        body body dto.PaymentRequest true "Payment"
// @Security     BearerAuth
// @Router       /guests/{id}/bill/payments [post]
func (ctrl *BillingController) ProcessPayment(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	bill, err := ctrl.billing.ProcessPayment(c.Request.Context(), id, req.Amount, req.Method)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bill)
}

func (ctrl *BillingController) DailyRevenue(c *gin.Context) {
	day, ok := queryDate(c, "date")
	if !ok {
		return
	}
	revenue, err := ctrl.billing.DailyRevenue(c.Request.Context(), day)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.RevenueResponse{Period: day.Format("2006-01-02"), Revenue: revenue})
}

func (ctrl *BillingController) MonthlyRevenue(c *gin.Context) {
	now := time.Now()
	year := queryInt(c, "year", now.Year())
	month := queryInt(c, "month", int(now.Month()))
	if month < 1 || month > 12 {
		response.BadRequest(c, "Tháng không hợp lệ")
		return
	}
	revenue, err := ctrl.billing.MonthlyRevenue(c.Request.Context(), year, time.Month(month))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.RevenueResponse{Period: fmt.Sprintf("%04d-%02d", year, month), Revenue: revenue})
}
