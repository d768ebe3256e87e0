package models

import "gorm.io/datatypes"

// Customer payloads

type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Phone   string  `json:"phone" binding:"required,max=50"`
	Gender  string  `json:"gender" binding:"omitempty,oneof=male female unisex"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,min=1,max=50"`
	Gender  *string `json:"gender" binding:"omitempty,oneof=male female unisex"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// Changes returns the columns supplied in the request
func (r UpdateCustomerRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setString(changes, "name", r.Name)
	setString(changes, "phone", r.Phone)
	setString(changes, "gender", r.Gender)
	setString(changes, "address", r.Address)
	setString(changes, "notes", r.Notes)
	return changes
}

type CustomerFilter struct {
	Search string `form:"search"`
}

// Measurement template payloads

type CreateTemplateRequest struct {
	GarmentType string            `json:"garment_type" binding:"required,max=100"`
	Gender      string            `json:"gender" binding:"required,oneof=male female unisex"`
	FieldsJSON  map[string]string `json:"fields_json" binding:"required"`
	DisplayName string            `json:"display_name" binding:"required,max=255"`
}

type UpdateTemplateRequest struct {
	GarmentType *string           `json:"garment_type" binding:"omitempty,min=1,max=100"`
	Gender      *string           `json:"gender" binding:"omitempty,oneof=male female unisex"`
	FieldsJSON  map[string]string `json:"fields_json"`
	DisplayName *string           `json:"display_name" binding:"omitempty,min=1,max=255"`
}

// Changes returns the columns supplied in the request
func (r UpdateTemplateRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setString(changes, "garment_type", r.GarmentType)
	setString(changes, "gender", r.Gender)
	setString(changes, "display_name", r.DisplayName)
	if r.FieldsJSON != nil {
		changes["fields_json"] = FieldsMap(r.FieldsJSON)
	}
	return changes
}

type TemplateFilter struct {
	GarmentType string `form:"garment_type"`
	Gender      string `form:"gender" binding:"omitempty,oneof=male female unisex"`
}

// FieldsMap converts template field labels into a JSON column value
func FieldsMap(fields map[string]string) datatypes.JSONMap {
	m := datatypes.JSONMap{}
	for k, v := range fields {
		m[k] = v
	}
	return m
}

// Measurement payloads

type CreateMeasurementRequest struct {
	CustomerID       uint                   `json:"customer_id" binding:"required"`
	GarmentType      string                 `json:"garment_type" binding:"required,max=100"`
	TemplateID       uint                   `json:"template_id" binding:"required"`
	MeasurementsJSON map[string]interface{} `json:"measurements_json" binding:"required"`
}

// UpdateMeasurementRequest replaces only the value map when MeasurementsJSON is present
type UpdateMeasurementRequest struct {
	GarmentType      *string                `json:"garment_type" binding:"omitempty,min=1,max=100"`
	TemplateID       *uint                  `json:"template_id" binding:"omitempty,min=1"`
	MeasurementsJSON map[string]interface{} `json:"measurements_json"`
}

type MeasurementFilter struct {
	CustomerID  uint   `form:"customer_id"`
	GarmentType string `form:"garment_type"`
}

// Order payloads

type OrderItemRequest struct {
	GarmentType   string   `json:"garment_type" binding:"required,max=100"`
	Quantity      int      `json:"quantity" binding:"required,gte=1"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	FabricDetails *string  `json:"fabric_details"`
	MeasurementID *uint    `json:"measurement_id"`
}

type CreateOrderRequest struct {
	CustomerID       uint               `json:"customer_id" binding:"required"`
	OrderDate        string             `json:"order_date" binding:"omitempty,datetime=2006-01-02"`
	DeliveryDate     string             `json:"delivery_date" binding:"required,datetime=2006-01-02"`
	Items            []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes            *string            `json:"notes"`
	AssignedStaffIDs []uint             `json:"assigned_staff_ids"`
}

type UpdateOrderRequest struct {
	Status       *string `json:"status" binding:"omitempty,oneof=pending cutting sewing ready delivered"`
	DeliveryDate *string `json:"delivery_date" binding:"omitempty,datetime=2006-01-02"`
	Notes        *string `json:"notes"`
}

// Changes returns the columns supplied in the request
func (r UpdateOrderRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setString(changes, "status", r.Status)
	setString(changes, "delivery_date", r.DeliveryDate)
	setString(changes, "notes", r.Notes)
	return changes
}

type OrderFilter struct {
	CustomerID uint   `form:"customer_id"`
	Status     string `form:"status" binding:"omitempty,oneof=pending cutting sewing ready delivered"`
}

type AssignStaffRequest struct {
	StaffID      uint    `json:"staff_id" binding:"required"`
	AssignedDate string  `json:"assigned_date" binding:"omitempty,datetime=2006-01-02"`
	Notes        *string `json:"notes"`
}

// Payment payloads

type CreatePaymentRequest struct {
	OrderID       uint     `json:"order_id" binding:"required"`
	Amount        *float64 `json:"amount" binding:"required,gte=0"`
	PaymentType   string   `json:"payment_type" binding:"required,oneof=advance partial full"`
	PaymentMethod string   `json:"payment_method" binding:"required,oneof=cash bkash nagad other"`
	Date          string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Notes         *string  `json:"notes"`
}

type UpdatePaymentRequest struct {
	Amount        *float64 `json:"amount" binding:"omitempty,gte=0"`
	PaymentType   *string  `json:"payment_type" binding:"omitempty,oneof=advance partial full"`
	PaymentMethod *string  `json:"payment_method" binding:"omitempty,oneof=cash bkash nagad other"`
	Date          *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Notes         *string  `json:"notes"`
}

// Changes returns the columns supplied in the request
func (r UpdatePaymentRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Amount != nil {
		changes["amount"] = *r.Amount
	}
	setString(changes, "payment_type", r.PaymentType)
	setString(changes, "payment_method", r.PaymentMethod)
	setString(changes, "date", r.Date)
	setString(changes, "notes", r.Notes)
	return changes
}

type PaymentFilter struct {
	OrderID uint `form:"order_id"`
}

// Delivery filters

type DeliveryFilter struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Status    string `form:"status" binding:"omitempty,oneof=pending cutting sewing ready delivered"`
}

// Sample payloads

type CreateSampleRequest struct {
	GarmentType string   `json:"garment_type" binding:"required,max=100"`
	Title       string   `json:"title" binding:"required,max=255"`
	Description *string  `json:"description"`
	Images      []string `json:"images" binding:"required,min=1,dive,required"`
}

// UpdateSampleRequest replaces the whole image set when Images is supplied
type UpdateSampleRequest struct {
	GarmentType *string   `json:"garment_type" binding:"omitempty,min=1,max=100"`
	Title       *string   `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images" binding:"omitempty,min=1,dive,required"`
}

// Changes returns the scalar columns supplied in the request
func (r UpdateSampleRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setString(changes, "garment_type", r.GarmentType)
	setString(changes, "title", r.Title)
	setString(changes, "description", r.Description)
	return changes
}

type SampleFilter struct {
	GarmentType string `form:"garment_type"`
}

// Staff payloads

type CreateStaffRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Phone    string  `json:"phone" binding:"required,max=50"`
	Address  *string `json:"address"`
	Role     string  `json:"role" binding:"required,oneof=master_tailor tailor assistant_tailor cutting_master sewing_operator finishing receptionist delivery_person accountant other"`
	JoinDate string  `json:"join_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateStaffRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Phone    *string `json:"phone" binding:"omitempty,min=1,max=50"`
	Address  *string `json:"address"`
	Role     *string `json:"role" binding:"omitempty,oneof=master_tailor tailor assistant_tailor cutting_master sewing_operator finishing receptionist delivery_person accountant other"`
	JoinDate *string `json:"join_date" binding:"omitempty,datetime=2006-01-02"`
}

// Changes returns the columns supplied in the request
func (r UpdateStaffRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	setString(changes, "name", r.Name)
	setString(changes, "phone", r.Phone)
	setString(changes, "address", r.Address)
	setString(changes, "role", r.Role)
	setString(changes, "join_date", r.JoinDate)
	return changes
}

type StaffFilter struct {
	Role string `form:"role" binding:"omitempty,oneof=master_tailor tailor assistant_tailor cutting_master sewing_operator finishing receptionist delivery_person accountant other"`
}

func setString(changes map[string]interface{}, column string, value *string) {
	if value != nil {
		changes[column] = *value
	}
}
