package department

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendance/console/foundation/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalog []string

func (c catalog) Departments() []string { return c }

func TestGetList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := web.NewApp(gin.New())
	app.Get("/departments", NewController(catalog{"Engineering", "Human Resources", "Marketing"}).GetList)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/departments?search=ing", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Results []string `json:"results"`
			Count   int      `json:"count"`
		} `json:"data"`
		Status bool `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, []string{"Engineering", "Marketing"}, body.Data.Results)
	assert.Equal(t, 2, body.Data.Count)
}
