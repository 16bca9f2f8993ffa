package copytrading

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextrade/pkg/errors/ecode"
	"nextrade/pkg/response"
)

func TestSaveValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, svc := newTestGateway(t)
	h := NewCopyTradingHandler(svc)

	r := gin.New()
	r.POST("/save", h.Save())

	// 缺必填字段且金额非正，应拒绝
	body := `{"wallet":"0x55...427d","symbol":"BTC","chain":"ethereum","allocationUsd":-5}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/save", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var res response.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, ecode.ValidateErr, res.Code)
	assert.NotEmpty(t, res.Message)
}

func TestSaveOk(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, svc := newTestGateway(t)
	h := NewCopyTradingHandler(svc)

	r := gin.New()
	r.POST("/save", h.Save())

	body := `{"wallet":"0x99...78a0","symbol":"ETH","chain":"ethereum","allocationUsd":500,"maxPositionSize":100,"stopLoss":5}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/save", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res response.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, ecode.Success, res.Code)
}
