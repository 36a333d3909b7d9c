package controllers

import (
	"orionhotel/dto"
	"orionhotel/models"
	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	guests *services.GuestService
}

func NewGuestController(guests *services.GuestService) *GuestController {
	return &GuestController{guests: guests}
}

// GetGuests godoc
// @Summary      List guests
// @Tags         Guests
// @Param        status query string false "CHECKED_IN or CHECKED_OUT"
// @Param        q query string false "Search by name, phone or email"
// @Security     BearerAuth
// @Router       /guests [get]
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	var (
		list []models.Guest
		err  error
	)
	switch {
	case c.Query("q") != "":
		list, err = ctrl.guests.SearchGuests(c.Request.Context(), c.Query("q"))
	case c.Query("status") != "":
		list, err = ctrl.guests.ListByStatus(c.Request.Context(), c.Query("status"))
	default:
		list, err = ctrl.guests.ListGuests(c.Request.Context())
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	page, current, limit := dto.Paginate(dto.NewGuestResponses(list), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	response.SuccessWithPagination(c, page, current, limit, len(list))
}

// SuggestGuests gợi ý khách cho ô tìm kiếm
func (ctrl *GuestController) SuggestGuests(c *gin.Context) {
	list, err := ctrl.guests.SuggestGuests(c.Request.Context(), c.Query("q"), queryInt(c, "limit", 5))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewGuestResponses(list))
}

func (ctrl *GuestController) RegisterGuest(c *gin.Context) {
	var req dto.GuestRequest
	if !bindJSON(c, &req) {
		return
	}
	guest := req.Model()
	if err := ctrl.guests.RegisterGuest(c.Request.Context(), guest); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, dto.NewGuestResponse(guest))
}

func (ctrl *GuestController) GetGuest(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	guest, err := ctrl.guests.GetGuest(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewGuestResponse(guest))
}

func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.GuestRequest
	if !bindJSON(c, &req) {
		return
	}
	guest, err := ctrl.guests.UpdateGuest(c.Request.Context(), id, req.Model())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewGuestResponse(guest))
}

// CheckIn godoc
// @Summary      Check a registered guest into a room
// @Tags         Guests
// @Param        id path int true "Guest ID"
// @Param        body body dto.CheckInRequest true "Room"
// @Security     BearerAuth
// @Router       /guests/{id}/check-in [post]
func (ctrl *GuestController) CheckIn(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.CheckInRequest
	if !bindJSON(c, &req) {
		return
	}
	guest, err := ctrl.guests.CheckIn(c.Request.Context(), id, req.RoomNumber)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewGuestResponse(guest))
}

// CheckOut godoc
// @Summary      Check a guest out and produce the final bill
// @Tags         Guests
// @Param        id path int true "Guest ID"
// @Security     BearerAuth
// @Router       /guests/{id}/check-out [post]
func (ctrl *GuestController) CheckOut(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	guest, bill, err := ctrl.guests.CheckOut(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.CheckOutResponse{Guest: dto.NewGuestResponse(guest), Bill: bill})
}
