package models

import "gorm.io/datatypes"

// CustomerResponse is the wire shape of a customer
type CustomerResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Gender    string  `json:"gender"`
	Address   *string `json:"address"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"created_at"`
}

func NewCustomerResponse(c Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Gender:    c.Gender,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: FormatTimestamp(c.CreatedAt),
	}
}

type TemplateResponse struct {
	ID          uint              `json:"id"`
	GarmentType string            `json:"garment_type"`
	Gender      string            `json:"gender"`
	FieldsJSON  datatypes.JSONMap `json:"fields_json"`
	DisplayName string            `json:"display_name"`
	CreatedAt   string            `json:"created_at"`
}

func NewTemplateResponse(t MeasurementTemplate) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID,
		GarmentType: t.GarmentType,
		Gender:      t.Gender,
		FieldsJSON:  t.FieldsJSON,
		DisplayName: t.DisplayName,
		CreatedAt:   FormatTimestamp(t.CreatedAt),
	}
}

// MeasurementResponse embeds the owning customer and template names
type MeasurementResponse struct {
	ID               uint              `json:"id"`
	CustomerID       uint              `json:"customer_id"`
	CustomerName     string            `json:"customer_name"`
	CustomerPhone    string            `json:"customer_phone"`
	GarmentType      string            `json:"garment_type"`
	TemplateID       uint              `json:"template_id"`
	TemplateName     string            `json:"template_name"`
	MeasurementsJSON datatypes.JSONMap `json:"measurements_json"`
	CreatedAt        string            `json:"created_at"`
}

// NewMeasurementResponse expects Customer and Template to be preloaded
func NewMeasurementResponse(m Measurement) MeasurementResponse {
	return MeasurementResponse{
		ID:               m.ID,
		CustomerID:       m.CustomerID,
		CustomerName:     m.Customer.Name,
		CustomerPhone:    m.Customer.Phone,
		GarmentType:      m.GarmentType,
		TemplateID:       m.TemplateID,
		TemplateName:     m.Template.DisplayName,
		MeasurementsJSON: m.MeasurementsJSON,
		CreatedAt:        FormatTimestamp(m.CreatedAt),
	}
}

type OrderItemResponse struct {
	ID            uint    `json:"id"`
	OrderID       uint    `json:"order_id"`
	GarmentType   string  `json:"garment_type"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	FabricDetails *string `json:"fabric_details"`
	MeasurementID *uint   `json:"measurement_id"`
}

func NewOrderItemResponse(i OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:            i.ID,
		OrderID:       i.OrderID,
		GarmentType:   i.GarmentType,
		Quantity:      i.Quantity,
		Price:         i.Price,
		FabricDetails: i.FabricDetails,
		MeasurementID: i.MeasurementID,
	}
}

type AssignmentResponse struct {
	ID           uint    `json:"id"`
	OrderID      uint    `json:"order_id"`
	StaffID      uint    `json:"staff_id"`
	StaffName    string  `json:"staff_name"`
	StaffRole    string  `json:"staff_role"`
	AssignedDate string  `json:"assigned_date"`
	Notes        *string `json:"notes"`
	CreatedAt    string  `json:"created_at"`
}

// NewAssignmentResponse expects Staff to be preloaded
func NewAssignmentResponse(a OrderStaffAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:           a.ID,
		OrderID:      a.OrderID,
		StaffID:      a.StaffID,
		StaffName:    a.Staff.Name,
		StaffRole:    a.Staff.Role,
		AssignedDate: a.AssignedDate,
		Notes:        a.Notes,
		CreatedAt:    FormatTimestamp(a.CreatedAt),
	}
}

// DeliveryResponse is an order with its customer contact and balance
type DeliveryResponse struct {
	ID              uint    `json:"id"`
	CustomerID      uint    `json:"customer_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	OrderDate       string  `json:"order_date"`
	DeliveryDate    string  `json:"delivery_date"`
	Status          string  `json:"status"`
	TotalAmount     float64 `json:"total_amount"`
	Notes           *string `json:"notes"`
	CreatedAt       string  `json:"created_at"`
	PaidAmount      float64 `json:"paid_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
}

// NewDeliveryResponse expects Customer to be preloaded
func NewDeliveryResponse(o Order, paid, remaining float64) DeliveryResponse {
	return DeliveryResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		CustomerName:    o.Customer.Name,
		CustomerPhone:   o.Customer.Phone,
		OrderDate:       o.OrderDate,
		DeliveryDate:    o.DeliveryDate,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		Notes:           o.Notes,
		CreatedAt:       FormatTimestamp(o.CreatedAt),
		PaidAmount:      paid,
		RemainingAmount: remaining,
	}
}

// OrderResponse is the detailed order read model
type OrderResponse struct {
	DeliveryResponse
	Items         []OrderItemResponse  `json:"items"`
	AssignedStaff []AssignmentResponse `json:"assigned_staff"`
}

// NewOrderResponse expects Customer, Items and StaffAssignments.Staff to be preloaded
func NewOrderResponse(o Order, paid, remaining float64) OrderResponse {
	return OrderResponse{
		DeliveryResponse: NewDeliveryResponse(o, paid, remaining),
		Items:            MapAll(o.Items, NewOrderItemResponse),
		AssignedStaff:    MapAll(o.StaffAssignments, NewAssignmentResponse),
	}
}

type PaymentResponse struct {
	ID            uint    `json:"id"`
	OrderID       uint    `json:"order_id"`
	Amount        float64 `json:"amount"`
	PaymentType   string  `json:"payment_type"`
	PaymentMethod string  `json:"payment_method"`
	Date          string  `json:"date"`
	Notes         *string `json:"notes"`
	CreatedAt     string  `json:"created_at"`
}

func NewPaymentResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		PaymentType:   p.PaymentType,
		PaymentMethod: p.PaymentMethod,
		Date:          p.Date,
		Notes:         p.Notes,
		CreatedAt:     FormatTimestamp(p.CreatedAt),
	}
}

type StaffResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Address   *string `json:"address"`
	Role      string  `json:"role"`
	JoinDate  string  `json:"join_date"`
	CreatedAt string  `json:"created_at"`
}

func NewStaffResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Address:   s.Address,
		Role:      s.Role,
		JoinDate:  s.JoinDate,
		CreatedAt: FormatTimestamp(s.CreatedAt),
	}
}

type SampleImageResponse struct {
	ID           uint   `json:"id"`
	SampleID     uint   `json:"sample_id"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
}

func NewSampleImageResponse(i SampleImage) SampleImageResponse {
	return SampleImageResponse{
		ID:           i.ID,
		SampleID:     i.SampleID,
		ImageURL:     i.ImageURL,
		DisplayOrder: i.DisplayOrder,
		CreatedAt:    FormatTimestamp(i.CreatedAt),
	}
}

type SampleResponse struct {
	ID          uint                  `json:"id"`
	GarmentType string                `json:"garment_type"`
	Title       string                `json:"title"`
	Description *string               `json:"description"`
	CreatedAt   string                `json:"created_at"`
	Images      []SampleImageResponse `json:"images"`
}

// NewSampleResponse expects Images to be preloaded in display order
func NewSampleResponse(s Sample) SampleResponse {
	return SampleResponse{
		ID:          s.ID,
		GarmentType: s.GarmentType,
		Title:       s.Title,
		Description: s.Description,
		CreatedAt:   FormatTimestamp(s.CreatedAt),
		Images:      MapAll(s.Images, NewSampleImageResponse),
	}
}

// UploadResponse is returned after a sample image upload
type UploadResponse struct {
	ImageURL string `json:"image_url"`
	Filename string `json:"filename"`
}

// MapAll converts each element with fn; the result is never nil so it encodes as []
func MapAll[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
