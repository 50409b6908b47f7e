// Package accessrequest holds the state of the three-step access-request form.
// The state travels between steps as form fields; nothing is stored server side.
package accessrequest

import (
	"github.com/go-playground/validator/v10"

	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
)

type Step int

const (
	StepPersonal Step = iota
	StepContact
	StepConfirm
)

// Steps lists every step in order.
var Steps = []Step{StepPersonal, StepContact, StepConfirm}

// ParseStep clamps `n` to a known step.
func ParseStep(n int) Step {
	switch {
	case n < int(StepPersonal):
		return StepPersonal
	case n > int(StepConfirm):
		return StepConfirm
	}
	return Step(n)
}

func (s Step) Index() int { return int(s) }

func (s Step) Last() bool { return s == StepConfirm }

// LabelKey is the message key of the step title.
func (s Step) LabelKey() string {
	switch s {
	case StepContact:
		return "access.step.1"
	case StepConfirm:
		return "access.step.2"
	default:
		return "access.step.0"
	}
}

const (
	UserTypeResident = "resident"
	UserTypeService  = "service"
)

// stepFields are the fields each step owns, by struct field name.
var stepFields = map[Step][]string{
	StepPersonal: {"FirstName", "LastName", "Email", "UserType", "CompanyName"},
	StepContact:  {"Phone", "Address", "ApartmentNumber", "Reason", "Message"},
}

type Form struct {
	Step Step `form:"step"`

	FirstName   string `form:"firstName" validate:"required,notblank,max=100"`
	LastName    string `form:"lastName" validate:"required,notblank,max=100"`
	Email       string `form:"email" validate:"required,notblank,max=200"`
	UserType    string `form:"userType" validate:"required,oneof=resident service"`
	CompanyName string `form:"companyName" validate:"max=200"`

	Phone           string `form:"phone" validate:"required,notblank,max=50"`
	Address         string `form:"address" validate:"required,notblank,max=300"`
	ApartmentNumber string `form:"apartmentNumber" validate:"max=20"`
	Reason          string `form:"reason" validate:"max=500"`
	Message         string `form:"message" validate:"max=2000"`
}

// New returns an empty form on its first step, for a resident.
func New() Form {
	return Form{Step: StepPersonal, UserType: UserTypeResident}
}

// Clean trims every field and clamps the step.
func (f *Form) Clean() {
	f.Step = ParseStep(int(f.Step))
	for _, s := range []*string{
		&f.FirstName, &f.LastName, &f.Email, &f.CompanyName,
		&f.Phone, &f.Address, &f.ApartmentNumber, &f.Reason, &f.Message,
	} {
		*s = core.CleanString(*s)
	}
	f.UserType = core.CleanString(f.UserType, true)
	if f.UserType == "" {
		f.UserType = UserTypeResident
	}
}

func (f Form) IsResident() bool { return f.UserType == UserTypeResident }

func (f Form) IsService() bool { return f.UserType == UserTypeService }

// FullName joins first and last names for the summary.
func (f Form) FullName() string {
	return core.CleanString(f.FirstName + " " + f.LastName)
}

// ValidateStep checks the fields owned by `step`. The confirmation step owns none.
func (f Form) ValidateStep(validate *validator.Validate, step Step) error {
	fields, ok := stepFields[step]
	if !ok {
		return nil
	}
	return validate.StructPartial(f, fields...)
}

// Next moves to the following step when the current one is valid.
// On error the step is unchanged.
func (f *Form) Next(validate *validator.Validate) error {
	if f.Step.Last() {
		return nil
	}
	if err := f.ValidateStep(validate, f.Step); err != nil {
		return err
	}
	f.Step++
	return nil
}

// Back moves to the previous step, never before the first one.
func (f *Form) Back() {
	if f.Step > StepPersonal {
		f.Step--
	}
}

// Ready checks every step up to the confirmation. On error the form moves to the first invalid step.
func (f *Form) Ready(validate *validator.Validate) error {
	for _, step := range Steps {
		if err := f.ValidateStep(validate, step); err != nil {
			f.Step = step
			return err
		}
	}
	return nil
}

// Submission is the payload sent to the remote API. The company only applies to services
// and the apartment only to residents.
func (f Form) Submission() gateway.AccessRequest {
	req := gateway.AccessRequest{
		FirstName:       f.FirstName,
		LastName:        f.LastName,
		Email:           f.Email,
		Phone:           f.Phone,
		Address:         f.Address,
		ApartmentNumber: f.ApartmentNumber,
		UserType:        f.UserType,
		CompanyName:     f.CompanyName,
		Reason:          f.Reason,
		Message:         f.Message,
	}
	if f.IsResident() {
		req.CompanyName = ""
	} else {
		req.ApartmentNumber = ""
	}
	return req
}
