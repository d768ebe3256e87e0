package controllers

import (
	"net/http"
	"testing"

	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementEndpoints(t *testing.T) {
	router, _ := setupTest(t)
	customer := seedCustomer(t, router, "Rahim", "01711111111")
	tpl := mustCreate(t, router, url("/measurement-templates"), templateBody("shirt", "male"))

	var created models.MeasurementResponse
	status, _ := call(t, router, http.MethodPost, url("/measurements"), map[string]interface{}{
		"customer_id":       customer,
		"garment_type":      "shirt",
		"template_id":       tpl,
		"measurements_json": map[string]interface{}{"chest": 40.5, "note": "loose"},
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Rahim", created.CustomerName)
	assert.Equal(t, "01711111111", created.CustomerPhone)
	assert.Equal(t, "shirt male", created.TemplateName)
	assert.Equal(t, 40.5, created.MeasurementsJSON["chest"])
	assert.Equal(t, "loose", created.MeasurementsJSON["note"])

	var list []models.MeasurementResponse
	status, _ = call(t, router, http.MethodGet, url("/measurements?customer_id=%d", customer), nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	var updated models.MeasurementResponse
	status, _ = call(t, router, http.MethodPatch, url("/measurements/%d", created.ID),
		map[string]interface{}{"measurements_json": map[string]interface{}{"chest": 42}}, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 42.0, updated.MeasurementsJSON["chest"])
	assert.NotContains(t, updated.MeasurementsJSON, "note")

	status, _ = call(t, router, http.MethodDelete, url("/measurements/%d", created.ID), nil, nil)
	assert.Equal(t, http.StatusOK, status)
	status, env := call(t, router, http.MethodGet, url("/measurements/%d", created.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "MEASUREMENT_NOT_FOUND", env.ErrorCode())
}

func TestCreateMeasurementMissingOwners(t *testing.T) {
	router, _ := setupTest(t)
	customer := seedCustomer(t, router, "Rahim", "017")
	tpl := mustCreate(t, router, url("/measurement-templates"), templateBody("shirt", "male"))

	tests := []struct {
		name          string
		customerID    uint
		templateID    uint
		expectedError string
	}{
		{"unknown customer", 999, tpl, "CUSTOMER_NOT_FOUND"},
		{"unknown template", customer, 999, "TEMPLATE_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := call(t, router, http.MethodPost, url("/measurements"), map[string]interface{}{
				"customer_id": tt.customerID, "garment_type": "shirt", "template_id": tt.templateID,
				"measurements_json": map[string]interface{}{},
			}, nil)
			assert.Equal(t, http.StatusNotFound, status)
			assert.Equal(t, tt.expectedError, env.ErrorCode())
		})
	}
}
