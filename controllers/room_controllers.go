package controllers

import (
	"orionhotel/dto"
	"orionhotel/repository"
	"orionhotel/response"
	"orionhotel/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

// GetRooms godoc
// @Summary      List rooms
// @Tags         Rooms
// @Produce      json
// @Param        status query string false "AVAILABLE, OCCUPIED, DIRTY, MAINTENANCE"
// @Param        roomType query string false "Standard, Deluxe, Suite"
// @Param        page query int false "Page"
// @Param        limit query int false "Page size"
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /rooms [get]
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.rooms.ListRooms(c.Request.Context(), repository.RoomFilter{
		Status:   c.Query("status"),
		RoomType: c.Query("roomType"),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	page, current, limit := dto.Paginate(rooms, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	response.SuccessWithPagination(c, page, current, limit, len(rooms))
}

func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := ctrl.rooms.ListAvailableRooms(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, rooms)
}

// CreateRoom godoc
// @Summary      Add a room
// @Tags         Rooms
// @Accept       json
// @Param        body body dto.RoomRequest true "Room"
// @Security     BearerAuth
// @Success      201 {object} response.Response
// @Failure      409 {object} response.Response
// @Router       /rooms [post]
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room := req.Model()
	if err := ctrl.rooms.AddRoom(c.Request.Context(), room); err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, room)
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}
	room, err := ctrl.rooms.GetRoom(c.Request.Context(), number)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, room)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}
	var req dto.RoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room := req.Model()
	room.RoomNumber = number
	if err := ctrl.rooms.UpdateRoom(c.Request.Context(), room); err != nil {
		response.FromError(c, err)
		return
	}
	updated, err := ctrl.rooms.GetRoom(c.Request.Context(), number)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, updated)
}

// ChangeStatus dùng cho lễ tân/buồng phòng đổi trạng thái thủ công
func (ctrl *RoomController) ChangeStatus(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := ctrl.rooms.SetStatus(c.Request.Context(), number, req.Status); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"roomNumber": number, "status": req.Status})
}

func (ctrl *RoomController) StatusCounts(c *gin.Context) {
	counts, err := ctrl.rooms.StatusCounts(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, counts)
}
