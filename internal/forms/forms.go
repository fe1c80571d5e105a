// Package forms holds the declarative schemas each console form is checked
// against before any request is dispatched. A form that fails here never
// reaches the network. Server-side field errors merge into the same
// FieldErrors shape so a screen renders both identically.
package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/CodeDreamers777/assettone-console/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the field's JSON name so client and server errors
	// key identically.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterStructValidation(unitFormRules, UnitForm{})
	v.RegisterStructValidation(leaseFormRules, LeaseForm{})
	return v
}

// FieldErrors maps a field's JSON name to a user-facing message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, msg := range f {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Validate checks form against its schema and returns nil when it passes.
func Validate(form any) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"form": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "oneof":
		return "is not a valid choice"
	case "datetime":
		return "must be a date in YYYY-MM-DD form"
	case "endafterstart":
		return "End date must be after start date"
	case "customtype":
		return "Custom unit type name is required when unit type is CUSTOM"
	default:
		return "is invalid"
	}
}

// Merge folds server-returned field messages into errs, preferring the
// client-side message when both flagged the same field.
func (f FieldErrors) Merge(server map[string]string) FieldErrors {
	if f == nil && len(server) == 0 {
		return nil
	}
	out := FieldErrors{}
	for field, msg := range server {
		out[field] = msg
	}
	for field, msg := range f {
		out[field] = msg
	}
	return out
}

type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignUpForm struct {
	Username             string `json:"username" validate:"required"`
	FirstName            string `json:"first_name" validate:"required"`
	LastName             string `json:"last_name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	PhoneNumber          string `json:"phone_number" validate:"required,min=10"`
	Password             string `json:"password" validate:"required,min=6"`
	IdentificationType   string `json:"identification_type" validate:"required,oneof=id passport workPermit militaryId driversLicense"`
	IdentificationNumber string `json:"identification_number" validate:"required"`
}

type TenantForm struct {
	FirstName             string `json:"first_name" validate:"required"`
	LastName              string `json:"last_name" validate:"required"`
	Email                 string `json:"email" validate:"required,email"`
	PhoneNumber           string `json:"phone_number" validate:"required,min=10"`
	IdentificationType    string `json:"identification_type" validate:"required,oneof=id passport workPermit militaryId driversLicense"`
	IdentificationNumber  string `json:"identification_number" validate:"required"`
	Occupation            string `json:"occupation"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty,min=10"`
}

type PropertyForm struct {
	Name         string `json:"name" validate:"required"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Country      string `json:"country" validate:"required"`
	Description  string `json:"description"`
}

type UnitForm struct {
	UnitNumber     string  `json:"unit_number" validate:"required"`
	PropertyID     string  `json:"property" validate:"required"`
	UnitType       string  `json:"unit_type" validate:"required"`
	CustomUnitType string  `json:"custom_unit_type"`
	Rent           float64 `json:"rent" validate:"gt=0"`
	PaymentPeriod  string  `json:"payment_period" validate:"required,oneof=MONTHLY BIMONTHLY HALF_YEARLY YEARLY"`
	Floor          string  `json:"floor"`
}

func unitFormRules(sl validator.StructLevel) {
	form := sl.Current().Interface().(UnitForm)
	if form.UnitType == string(models.UnitTypeCustom) && form.CustomUnitType == "" {
		sl.ReportError(form.CustomUnitType, "custom_unit_type", "CustomUnitType", "customtype", "")
	}
}

type LeaseForm struct {
	UnitID          string  `json:"unit" validate:"required"`
	TenantID        string  `json:"tenant" validate:"required"`
	StartDate       string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	MonthlyRent     float64 `json:"monthly_rent" validate:"gt=0"`
	SecurityDeposit float64 `json:"security_deposit" validate:"gte=0"`
	PaymentPeriod   string  `json:"payment_period" validate:"required,oneof=MONTHLY BIMONTHLY HALF_YEARLY YEARLY"`
	Notes           string  `json:"notes"`
}

func leaseFormRules(sl validator.StructLevel) {
	form := sl.Current().Interface().(LeaseForm)
	if form.StartDate != "" && form.EndDate != "" && form.EndDate <= form.StartDate {
		sl.ReportError(form.EndDate, "end_date", "EndDate", "endafterstart", "")
	}
}

type MaintenanceRequestForm struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	UnitID      string `json:"unit" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH EMERGENCY"`
	Notes       string `json:"notes"`
}

type RepairCostForm struct {
	RepairCost float64 `json:"repair_cost" validate:"gt=0"`
}

type StaffForm struct {
	FirstName            string             `json:"first_name" validate:"required"`
	LastName             string             `json:"last_name" validate:"required"`
	Email                string             `json:"email" validate:"required,email"`
	PhoneNumber          string             `json:"phone_number" validate:"required,min=10"`
	UserType             string             `json:"user_type" validate:"required,oneof=MANAGER CLERK"`
	IdentificationType   string             `json:"identification_type" validate:"omitempty,oneof=id passport workPermit militaryId driversLicense"`
	IdentificationNumber string             `json:"identification_number" validate:"required_with=IdentificationType"`
	Permissions          models.Permissions `json:"permissions"`
	PropertyIDs          []string           `json:"properties"`
}

type EmailTenantsForm struct {
	Subject   string   `json:"subject" validate:"required"`
	Message   string   `json:"message" validate:"required"`
	TenantIDs []string `json:"tenants" validate:"required,min=1"`
}

type ChangePasswordForm struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type PaymentForm struct {
	LeaseID       string  `json:"lease" validate:"required"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	PaymentDate   string  `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}
