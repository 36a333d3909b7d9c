package controllers

import (
	"strconv"
	"time"

	"orionhotel/middleware"
	"orionhotel/models"
	"orionhotel/response"

	"github.com/gin-gonic/gin"
)

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return false
	}
	return true
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return 0, false
	}
	return uint(v), true
}

func roomNumberParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil || n <= 0 {
		response.BadRequest(c, "Số phòng không hợp lệ")
		return 0, false
	}
	return n, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// queryDate đọc ?name=yyyy-MM-dd, mặc định là hôm nay
func queryDate(c *gin.Context, name string) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return time.Now(), true
	}
	t, err := models.ParseDate(v)
	if err != nil {
		response.BadRequest(c, "Ngày phải có dạng yyyy-MM-dd")
		return time.Time{}, false
	}
	return t, true
}

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(uint)
	return id
}

func currentRole(c *gin.Context) string {
	return c.GetString(middleware.ContextRole)
}
