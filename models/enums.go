package models

// Genders used by customers and measurement templates
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderUnisex = "unisex"
)

// Order statuses. Any status may be set from any other.
const (
	StatusPending   = "pending"
	StatusCutting   = "cutting"
	StatusSewing    = "sewing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
)

// Payment types
const (
	PaymentAdvance = "advance"
	PaymentPartial = "partial"
	PaymentFull    = "full"
)

// Payment methods
const (
	MethodCash  = "cash"
	MethodBkash = "bkash"
	MethodNagad = "nagad"
	MethodOther = "other"
)

// Staff roles
const (
	RoleMasterTailor    = "master_tailor"
	RoleTailor          = "tailor"
	RoleAssistantTailor = "assistant_tailor"
	RoleCuttingMaster   = "cutting_master"
	RoleSewingOperator  = "sewing_operator"
	RoleFinishing       = "finishing"
	RoleReceptionist    = "receptionist"
	RoleDeliveryPerson  = "delivery_person"
	RoleAccountant      = "accountant"
	RoleOther           = "other"
)

var (
	Genders        = []string{GenderMale, GenderFemale, GenderUnisex}
	OrderStatuses  = []string{StatusPending, StatusCutting, StatusSewing, StatusReady, StatusDelivered}
	PaymentTypes   = []string{PaymentAdvance, PaymentPartial, PaymentFull}
	PaymentMethods = []string{MethodCash, MethodBkash, MethodNagad, MethodOther}
	StaffRoles     = []string{
		RoleMasterTailor, RoleTailor, RoleAssistantTailor, RoleCuttingMaster, RoleSewingOperator,
		RoleFinishing, RoleReceptionist, RoleDeliveryPerson, RoleAccountant, RoleOther,
	}
)

// IsValidStatus reports whether status is one of the order statuses
func IsValidStatus(status string) bool {
	return contains(OrderStatuses, status)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
