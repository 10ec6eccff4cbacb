package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/laga-admin/internal/constants"
	"github.com/laga-admin/internal/http/response"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/provider"
	"github.com/laga-admin/internal/repository"
	"github.com/laga-admin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupVoucherHandlerTest(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:voucher_handler_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Voucher{}); err != nil {
		t.Fatalf("migrate voucher failed: %v", err)
	}

	h := New(&provider.Container{
		VoucherService: service.NewVoucherService(repository.NewVoucherRepository(db)),
	})

	r := gin.New()
	r.POST("/api/admin/vouchers", h.CreateVoucher)
	r.GET("/api/admin/vouchers/check", h.CheckVoucher)
	return r, h
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v, body %s", err, w.Body.String())
	}
	return resp
}

func TestCreateVoucherHandler(t *testing.T) {
	r, _ := setupVoucherHandlerTest(t)

	payload := gin.H{
		"code":        " welcome10 ",
		"type":        constants.VoucherTypePercentage,
		"value":       10,
		"valid_until": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}

	w := postJSON(t, r, "/api/admin/vouchers", payload)
	resp := decodeEnvelope(t, w)
	if resp.StatusCode != response.CodeOK {
		t.Fatalf("expected ok, got %d msg %s", resp.StatusCode, resp.Msg)
	}

	// 规范化后同码重复创建返回冲突
	w = postJSON(t, r, "/api/admin/vouchers", payload)
	resp = decodeEnvelope(t, w)
	if resp.StatusCode != response.CodeConflict {
		t.Fatalf("expected conflict for duplicate code, got %d", resp.StatusCode)
	}
}

func TestCreateVoucherHandlerValidation(t *testing.T) {
	r, _ := setupVoucherHandlerTest(t)

	// 缺少必填字段直接由绑定拦截
	w := postJSON(t, r, "/api/admin/vouchers", gin.H{"code": "SAVE10"})
	resp := decodeEnvelope(t, w)
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected bad request for missing fields, got %d", resp.StatusCode)
	}

	// 业务校验失败（百分比超 100）
	w = postJSON(t, r, "/api/admin/vouchers", gin.H{
		"code":        "SAVE10",
		"type":        constants.VoucherTypePercentage,
		"value":       120,
		"valid_until": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	resp = decodeEnvelope(t, w)
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected bad request for invalid input, got %d", resp.StatusCode)
	}
}

func TestCheckVoucherHandler(t *testing.T) {
	r, h := setupVoucherHandlerTest(t)

	if _, err := h.VoucherService.Create(service.VoucherInput{
		Code:        "FLAT25K",
		Type:        constants.VoucherTypeFlat,
		Value:       models.NewMoneyFromFloat(25000),
		MinPurchase: models.NewMoneyFromFloat(100000),
		ValidUntil:  time.Now().Add(24 * time.Hour),
	}); err != nil {
		t.Fatalf("seed voucher failed: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/vouchers/check?code=flat25k&amount=200000", nil))
	resp := decodeEnvelope(t, w)
	if resp.StatusCode != response.CodeOK {
		t.Fatalf("expected usable voucher, got %d msg %s", resp.StatusCode, resp.Msg)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/vouchers/check?code=flat25k&amount=50000", nil))
	resp = decodeEnvelope(t, w)
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("expected rejection below min purchase, got %d", resp.StatusCode)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/vouchers/check?code=NOPE&amount=200000", nil))
	resp = decodeEnvelope(t, w)
	if resp.StatusCode != response.CodeNotFound {
		t.Fatalf("expected not found for unknown code, got %d", resp.StatusCode)
	}
}
