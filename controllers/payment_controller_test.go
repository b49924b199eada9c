package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MAyankprine20001/Penta-Cabs/controllers"
	"github.com/MAyankprine20001/Penta-Cabs/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ---- fake gateway ----

type fakeGateway struct {
	resp  map[string]interface{}
	err   error
	calls int
}

func (g *fakeGateway) CreateOrder(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	g.calls++
	return g.resp, g.err
}

// ---- helpers ----

func setupPaymentRouter(svc *services.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := controllers.NewPaymentController(svc)

	r.POST("/api/payment/create-order", c.CreateOrder)
	r.POST("/api/payment/verify", c.VerifyPayment)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ---- tests ----

func TestCreateOrder_Success(t *testing.T) {
	gw := &fakeGateway{resp: map[string]interface{}{"id": "order_xyz", "status": "created"}}
	r := setupPaymentRouter(services.NewPaymentService(gw, "testsecret", "INR"))

	w := postJSON(r, "/api/payment/create-order", gin.H{"price": 499.50})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "order_xyz", resp["id"])
	assert.Equal(t, float64(49950), resp["amount"])
	assert.Equal(t, "INR", resp["currency"])
	assert.Equal(t, "created", resp["status"])
	assert.Contains(t, resp["receipt"], "receipt_")
}

func TestCreateOrder_AmountAlias(t *testing.T) {
	gw := &fakeGateway{resp: map[string]interface{}{"id": "order_xyz", "status": "created"}}
	r := setupPaymentRouter(services.NewPaymentService(gw, "testsecret", "INR"))

	w := postJSON(r, "/api/payment/create-order", gin.H{"amount": 100})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, gw.calls)
}

func TestCreateOrder_InvalidPrice(t *testing.T) {
	gw := &fakeGateway{resp: map[string]interface{}{"id": "order_xyz"}}
	r := setupPaymentRouter(services.NewPaymentService(gw, "testsecret", "INR"))

	for _, body := range []gin.H{
		{},
		{"price": -10},
	} {
		w := postJSON(r, "/api/payment/create-order", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "Invalid price", resp["message"])
	}
	assert.Equal(t, 0, gw.calls)
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("gateway down")}
	r := setupPaymentRouter(services.NewPaymentService(gw, "testsecret", "INR"))

	w := postJSON(r, "/api/payment/create-order", gin.H{"price": 100})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Error creating order", resp["message"])
	// The gateway failure reason must never leak to the client.
	assert.NotContains(t, w.Body.String(), "gateway down")
}

func TestVerifyPayment_Success(t *testing.T) {
	r := setupPaymentRouter(services.NewPaymentService(nil, "testsecret", "INR"))

	w := postJSON(r, "/api/payment/verify", gin.H{
		"razorpay_order_id":   "order_A",
		"razorpay_payment_id": "pay_B",
		"razorpay_signature":  services.Signature("testsecret", "order_A", "pay_B"),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Payment verified successfully", resp["message"])
}

func TestVerifyPayment_InvalidSignature(t *testing.T) {
	r := setupPaymentRouter(services.NewPaymentService(nil, "testsecret", "INR"))

	w := postJSON(r, "/api/payment/verify", gin.H{
		"razorpay_order_id":   "order_A",
		"razorpay_payment_id": "pay_B",
		"razorpay_signature":  services.Signature("wrongsecret", "order_A", "pay_B"),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Invalid signature sent!", resp["message"])
}

func TestVerifyPayment_MissingFields(t *testing.T) {
	r := setupPaymentRouter(services.NewPaymentService(nil, "testsecret", "INR"))

	w := postJSON(r, "/api/payment/verify", gin.H{
		"razorpay_order_id": "order_A",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Missing required fields: razorpay_payment_id, razorpay_signature", resp["message"])
}

func TestVerifyPayment_Misconfigured(t *testing.T) {
	r := setupPaymentRouter(services.NewPaymentService(nil, "", "INR"))

	w := postJSON(r, "/api/payment/verify", gin.H{
		"razorpay_order_id":   "order_A",
		"razorpay_payment_id": "pay_B",
		"razorpay_signature":  "aa",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Payment verification unavailable", resp["message"])
}
