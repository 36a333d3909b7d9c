package controllers

import (
	"strconv"

	"orionhotel/dto"
	"orionhotel/models"
	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	booking *services.BookingService
}

func NewBookingController(booking *services.BookingService) *BookingController {
	return &BookingController{booking: booking}
}

// GetReservations godoc
// @Summary      List reservations
// @Tags         Reservations
// @Param        status query string false "PENDING, CONFIRMED, COMPLETED, CANCELLED"
// @Security     BearerAuth
// @Router       /reservations [get]
func (ctrl *BookingController) GetReservations(c *gin.Context) {
	list, err := ctrl.booking.ListReservations(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	page, current, limit := dto.Paginate(dto.NewReservationResponses(list), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	response.SuccessWithPagination(c, page, current, limit, len(list))
}

func (ctrl *BookingController) GetUpcoming(c *gin.Context) {
	list, err := ctrl.booking.UpcomingReservations(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewReservationResponses(list))
}

func (ctrl *BookingController) GetCancelled(c *gin.Context) {
	list, err := ctrl.booking.CancelledReservations(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewReservationResponses(list))
}

// CreateReservation godoc
// @Summary      Create a reservation
// @Tags         Reservations
// @Accept       json
// @Param        body body dto.ReservationRequest true "Reservation"
// @Security     BearerAuth
// @Success      201 {object} response.Response
// @Failure      409 {object} response.Response "room not available"
// @Router       /reservations [post]
func (ctrl *BookingController) CreateReservation(c *gin.Context) {
	var req dto.ReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := req.Model()
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := ctrl.booking.CreateReservation(c.Request.Context(), r); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, dto.NewReservationResponse(r))
}

func (ctrl *BookingController) GetReservation(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	r, err := ctrl.booking.GetReservation(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewReservationResponse(r))
}

func (ctrl *BookingController) ModifyReservation(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.ModifyReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	in, out, err := dto.ParseDates(req.CheckIn, req.CheckOut)
	if err != nil {
		response.FromError(c, err)
		return
	}
	r, err := ctrl.booking.ModifyReservation(c.Request.Context(), id, in, out, req.RoomType)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewReservationResponse(r))
}

func (ctrl *BookingController) AssignRoom(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.AssignRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := ctrl.booking.AssignRoom(c.Request.Context(), id, req.RoomNumber)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewReservationResponse(r))
}

func (ctrl *BookingController) transition(c *gin.Context, apply func(*gin.Context, uint) (*models.Reservation, error)) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	r, err := apply(c, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.NewReservationResponse(r))
}

func (ctrl *BookingController) Confirm(c *gin.Context) {
	ctrl.transition(c, func(c *gin.Context, id uint) (*models.Reservation, error) {
		return ctrl.booking.ConfirmReservation(c.Request.Context(), id)
	})
}

func (ctrl *BookingController) Cancel(c *gin.Context) {
	ctrl.transition(c, func(c *gin.Context, id uint) (*models.Reservation, error) {
		return ctrl.booking.CancelReservation(c.Request.Context(), id)
	})
}

func (ctrl *BookingController) CheckIn(c *gin.Context) {
	ctrl.transition(c, func(c *gin.Context, id uint) (*models.Reservation, error) {
		return ctrl.booking.CheckInReservation(c.Request.Context(), id)
	})
}

// Availability godoc
// @Summary      Check availability of a room or a room type
// @Tags         Reservations
// @Param        roomNumber query int false "Room number"
// @Param        roomType query string false "Room type, used when roomNumber is empty"
// @Param        checkIn query string true "yyyy-MM-dd"
// @Param        checkOut query string true "yyyy-MM-dd"
// @Security     BearerAuth
// @Router       /reservations/availability [get]
func (ctrl *BookingController) Availability(c *gin.Context) {
	in, out, err := dto.ParseDates(c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	var available bool
	if v := c.Query("roomNumber"); v != "" {
		number, convErr := strconv.Atoi(v)
		if convErr != nil {
			response.BadRequest(c, "Số phòng không hợp lệ")
			return
		}
		available, err = ctrl.booking.IsRoomAvailable(c.Request.Context(), number, in, out)
	} else {
		if c.Query("roomType") == "" {
			response.BadRequest(c, "Cần roomNumber hoặc roomType")
			return
		}
		available, err = ctrl.booking.IsRoomTypeAvailable(c.Request.Context(), c.Query("roomType"), in, out)
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"available": available})
}
