package ping

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ST10329226/Fakebook-SQL-MVC/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandlePing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handler := New()
	r.GET("/ping", handler.HandlePing)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response utils.Response
	err := json.Unmarshal(w.Body.Bytes(), &response)

	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "Ping successful", response.Message)

	data, ok := response.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "pong", data["message"])
}
