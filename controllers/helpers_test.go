package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(target string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = params
	return c, w
}

func TestUintParam(t *testing.T) {
	c, _ := testContext("/", gin.Params{{Key: "id", Value: "42"}})
	id, ok := uintParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	for _, v := range []string{"0", "-1", "abc"} {
		c, w := testContext("/", gin.Params{{Key: "id", Value: v}})
		_, ok := uintParam(c, "id")
		assert.False(t, ok, v)
		assert.Equal(t, http.StatusBadRequest, w.Code, v)
	}
}

func TestQueryHelpers(t *testing.T) {
	c, _ := testContext("/?limit=7&page=x&date=2024-05-10", nil)
	assert.Equal(t, 7, queryInt(c, "limit", 10))
	assert.Equal(t, 1, queryInt(c, "page", 1))
	assert.Equal(t, 3, queryInt(c, "missing", 3))

	day, ok := queryDate(c, "date")
	assert.True(t, ok)
	assert.Equal(t, "2024-05-10", day.Format("2006-01-02"))

	c, w := testContext("/?date=10/05/2024", nil)
	_, ok = queryDate(c, "date")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCurrentUserFromContext(t *testing.T) {
	c, _ := testContext("/", nil)
	assert.Equal(t, uint(0), currentUserID(c))

	c.Set("userID", uint(9))
	c.Set("userRole", "MANAGER")
	assert.Equal(t, uint(9), currentUserID(c))
	assert.Equal(t, "MANAGER", currentRole(c))
}
