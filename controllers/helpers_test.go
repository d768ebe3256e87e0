package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/clock"
	"github.com/kendall-kelly/tailorshop-api/middleware"
	"github.com/kendall-kelly/tailorshop-api/services"
	"github.com/kendall-kelly/tailorshop-api/tests/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const today = "2024-05-01"

// setupTest installs a fresh database and a fixed clock and returns a router
// with every handler mounted the way the API serves them
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	services.SetClock(clock.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { services.SetClock(nil) })
	db := testutil.NewTestDB(t)

	router := gin.New()
	router.Use(middleware.RequestID())
	v1 := router.Group("/api/v1")

	crud := func(path string, list, create, get, update, remove gin.HandlerFunc) {
		v1.GET(path, list)
		v1.POST(path, create)
		v1.GET(path+"/:id", get)
		v1.PUT(path+"/:id", update)
		v1.PATCH(path+"/:id", update)
		v1.DELETE(path+"/:id", remove)
	}
	crud("/customers", ListCustomers, CreateCustomer, GetCustomer, UpdateCustomer, DeleteCustomer)
	crud("/measurement-templates", ListTemplates, CreateTemplate, GetTemplate, UpdateTemplate, DeleteTemplate)
	crud("/measurements", ListMeasurements, CreateMeasurement, GetMeasurement, UpdateMeasurement, DeleteMeasurement)
	crud("/orders", ListOrders, CreateOrder, GetOrder, UpdateOrder, DeleteOrder)
	crud("/payments", ListPayments, CreatePayment, GetPayment, UpdatePayment, DeletePayment)
	crud("/samples", ListSamples, CreateSample, GetSample, UpdateSample, DeleteSample)
	crud("/staff", ListStaff, CreateStaff, GetStaff, UpdateStaff, DeleteStaff)
	v1.GET("/orders/:id/staff", ListOrderStaff)
	v1.POST("/orders/:id/staff", AssignOrderStaff)
	v1.DELETE("/orders/:id/staff/:assignment_id", UnassignOrderStaff)
	v1.GET("/deliveries", ListDeliveries)
	v1.POST("/samples/images", UploadSampleImage)
	v1.GET("/uploads/:filename", GetUploadedImage)

	return router, db
}

// call performs a request and decodes the envelope, unmarshalling data into out when given
func call(t *testing.T, router http.Handler, method, path string, body interface{}, out interface{}) (int, testutil.Envelope) {
	t.Helper()
	w := testutil.Request(t, router, method, path, body)
	return w.Code, testutil.Decode(t, w.Body.Bytes(), out)
}

// mustCreate posts body and returns the created id
func mustCreate(t *testing.T, router http.Handler, path string, body interface{}) uint {
	t.Helper()
	var created struct {
		ID uint `json:"id"`
	}
	status, env := call(t, router, http.MethodPost, path, body, &created)
	require.Equal(t, http.StatusCreated, status, "%s: %+v", path, env.Error)
	require.NotZero(t, created.ID)
	return created.ID
}

func url(format string, args ...interface{}) string {
	return "/api/v1" + fmt.Sprintf(format, args...)
}

func seedCustomer(t *testing.T, router http.Handler, name, phone string) uint {
	return mustCreate(t, router, url("/customers"), map[string]interface{}{"name": name, "phone": phone})
}

func seedStaff(t *testing.T, router http.Handler, name, role string) uint {
	return mustCreate(t, router, url("/staff"), map[string]interface{}{"name": name, "phone": "019", "role": role})
}

func seedOrder(t *testing.T, router http.Handler, customerID uint, price float64) uint {
	return mustCreate(t, router, url("/orders"), map[string]interface{}{
		"customer_id":   customerID,
		"delivery_date": "2024-05-20",
		"items": []map[string]interface{}{
			{"garment_type": "shirt", "quantity": 1, "price": price},
		},
	})
}

func asMap(t *testing.T, raw json.RawMessage) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}
