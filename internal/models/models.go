package models

import "time"

// UserType is the coarse role tag attached to every authenticated session.
type UserType string

const (
	UserTypeAdmin   UserType = "ADMIN"
	UserTypeManager UserType = "MANAGER"
	UserTypeClerk   UserType = "CLERK"
	UserTypeTenant  UserType = "TENANT"
)

type IdentificationType string

const (
	IdentificationNationalID     IdentificationType = "id"
	IdentificationPassport       IdentificationType = "passport"
	IdentificationWorkPermit     IdentificationType = "workPermit"
	IdentificationMilitaryID     IdentificationType = "militaryId"
	IdentificationDriversLicense IdentificationType = "driversLicense"
)

type UnitType string

const (
	UnitTypeStudio       UnitType = "STUDIO"
	UnitTypeOneBedroom   UnitType = "ONE_BEDROOM"
	UnitTypeTwoBedroom   UnitType = "TWO_BEDROOM"
	UnitTypeThreeBedroom UnitType = "THREE_BEDROOM"
	UnitTypePenthouse    UnitType = "PENTHOUSE"
	UnitTypeBedsitter    UnitType = "BEDSITTER"
	UnitTypeDuplex       UnitType = "DUPLEX"
	UnitTypeMaisonette   UnitType = "MAISONETTE"
	UnitTypeCustom       UnitType = "CUSTOM"
)

type PaymentPeriod string

const (
	PaymentMonthly    PaymentPeriod = "MONTHLY"
	PaymentBimonthly  PaymentPeriod = "BIMONTHLY"
	PaymentHalfYearly PaymentPeriod = "HALF_YEARLY"
	PaymentYearly     PaymentPeriod = "YEARLY"
)

type TenantStatus string

const (
	TenantActive   TenantStatus = "ACTIVE"
	TenantInactive TenantStatus = "INACTIVE"
	TenantEvicted  TenantStatus = "EVICTED"
)

type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "ACTIVE"
	LeaseExpired    LeaseStatus = "EXPIRED"
	LeaseTerminated LeaseStatus = "TERMINATED"
	LeasePending    LeaseStatus = "PENDING"
)

type MaintenanceStatus string

const (
	MaintenancePending   MaintenanceStatus = "PENDING"
	MaintenanceApproved  MaintenanceStatus = "APPROVED"
	MaintenanceRejected  MaintenanceStatus = "REJECTED"
	MaintenanceCompleted MaintenanceStatus = "COMPLETED"
)

type MaintenancePriority string

const (
	PriorityLow       MaintenancePriority = "LOW"
	PriorityMedium    MaintenancePriority = "MEDIUM"
	PriorityHigh      MaintenancePriority = "HIGH"
	PriorityEmergency MaintenancePriority = "EMERGENCY"
)

type CommunicationType string

const (
	CommunicationEmail CommunicationType = "EMAIL"
	CommunicationSMS   CommunicationType = "SMS"
	CommunicationInApp CommunicationType = "IN_APP"
)

// Permissions are the per-staff boolean flags the server attaches to a profile.
type Permissions struct {
	CanManageProperties  bool `json:"can_manage_properties"`
	CanAddUnits          bool `json:"can_add_units"`
	CanEditUnits         bool `json:"can_edit_units"`
	CanDeleteUnits       bool `json:"can_delete_units"`
	CanViewFinancialData bool `json:"can_view_financial_data"`
}

// Profile is the authenticated user's profile as returned by login/ and profile/.
type Profile struct {
	UserID               string             `json:"user_id"`
	Username             string             `json:"username"`
	Email                string             `json:"email"`
	PhoneNumber          string             `json:"phone_number"`
	UserType             UserType           `json:"user_type"`
	IdentificationType   IdentificationType `json:"identification_type"`
	IdentificationNumber string             `json:"identification_number"`
	Permissions          Permissions        `json:"permissions"`
}

type Property struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postal_code"`
	Country      string    `json:"country"`
	Description  string    `json:"description,omitempty"`
	TotalUnits   int       `json:"total_units,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Unit struct {
	ID             string        `json:"id"`
	UnitNumber     string        `json:"unit_number"`
	PropertyID     string        `json:"property"`
	PropertyName   string        `json:"property_name,omitempty"`
	UnitType       UnitType      `json:"unit_type"`
	CustomUnitType string        `json:"custom_unit_type,omitempty"`
	Rent           float64       `json:"rent"`
	PaymentPeriod  PaymentPeriod `json:"payment_period"`
	Floor          string        `json:"floor,omitempty"`
	SquareFootage  *float64      `json:"square_footage,omitempty"`
	IsOccupied     bool          `json:"is_occupied"`
	CurrentLeaseID string        `json:"current_lease,omitempty"`
	PaymentStatus  string        `json:"payment_status,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type Tenant struct {
	ID                    string             `json:"id"`
	FirstName             string             `json:"first_name"`
	LastName              string             `json:"last_name"`
	Email                 string             `json:"email,omitempty"`
	PhoneNumber           string             `json:"phone_number"`
	IdentificationType    IdentificationType `json:"identification_type,omitempty"`
	IdentificationNumber  string             `json:"identification_number,omitempty"`
	Occupation            string             `json:"occupation,omitempty"`
	MonthlyIncome         *float64           `json:"monthly_income,omitempty"`
	Status                TenantStatus       `json:"status"`
	EmergencyContactName  string             `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string             `json:"emergency_contact_phone,omitempty"`
	PropertyName          string             `json:"property_name,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

func (t Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}

type Lease struct {
	ID              string        `json:"id"`
	UnitID          string        `json:"unit"`
	TenantID        string        `json:"tenant"`
	UnitNumber      string        `json:"unit_number,omitempty"`
	TenantName      string        `json:"tenant_name,omitempty"`
	PropertyName    string        `json:"property_name,omitempty"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	MonthlyRent     float64       `json:"monthly_rent"`
	SecurityDeposit float64       `json:"security_deposit"`
	PaymentPeriod   PaymentPeriod `json:"payment_period"`
	Status          LeaseStatus   `json:"status"`
	PreviousLeaseID string        `json:"previous_lease,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type MaintenanceRequest struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	PropertyID    string              `json:"property,omitempty"`
	UnitID        string              `json:"unit,omitempty"`
	TenantID      string              `json:"tenant,omitempty"`
	Priority      MaintenancePriority `json:"priority"`
	Status        MaintenanceStatus   `json:"status"`
	RequestedDate *time.Time          `json:"requested_date,omitempty"`
	ApprovedDate  *time.Time          `json:"approved_rejected_date,omitempty"`
	CompletedDate *time.Time          `json:"completed_date,omitempty"`
	RepairCost    *float64            `json:"repair_cost,omitempty"`
	Notes         string              `json:"notes,omitempty"`
}

type StaffMember struct {
	ID                   string             `json:"id"`
	Username             string             `json:"username"`
	FirstName            string             `json:"first_name"`
	LastName             string             `json:"last_name"`
	Email                string             `json:"email"`
	PhoneNumber          string             `json:"phone_number"`
	UserType             UserType           `json:"user_type"`
	IdentificationType   IdentificationType `json:"identification_type,omitempty"`
	IdentificationNumber string             `json:"identification_number,omitempty"`
	Permissions          Permissions        `json:"permissions"`
	PropertyIDs          []string           `json:"properties,omitempty"`
}

// Recipient is one entry of a communication record's recipient list.
type Recipient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CommunicationRecord struct {
	ID           string            `json:"id"`
	Type         CommunicationType `json:"type"`
	Subject      string            `json:"subject"`
	Message      string            `json:"message"`
	SentBy       string            `json:"sent_by"`
	Recipients   []Recipient       `json:"recipients"`
	SentAt       time.Time         `json:"sent_at"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

type RentPayment struct {
	ID            string  `json:"id"`
	LeaseID       string  `json:"lease"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}
