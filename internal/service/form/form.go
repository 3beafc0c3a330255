// Package form validates the console's forms before anything is sent to
// the backend.
package form

import (
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"attendance/console/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/go-playground/validator/v10"
)

var (
	codeRegex  = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Employee is the Add-Employee form.
type Employee struct {
	EmployeeID string `form:"employee_id" json:"employee_id" validate:"notblank,code"`
	FullName   string `form:"full_name"   json:"full_name"   validate:"notblank,fullname"`
	Email      string `form:"email"       json:"email"       validate:"notblank,looseemail"`
	Department string `form:"department"  json:"department"  validate:"notblank,department"`
}

// Changed returns the names of fields whose value differs from prev.
func (f Employee) Changed(prev Employee) []string {
	var names []string
	if f.EmployeeID != prev.EmployeeID {
		names = append(names, "employee_id")
	}
	if f.FullName != prev.FullName {
		names = append(names, "full_name")
	}
	if f.Email != prev.Email {
		names = append(names, "email")
	}
	if f.Department != prev.Department {
		names = append(names, "department")
	}
	return names
}

// Mark is the Mark-Attendance form.
type Mark struct {
	EmployeeID string `form:"employee_id" json:"employee_id" validate:"notblank"`
	Date       string `form:"date"        json:"date"        validate:"notblank,day,notfuture"`
}

var messages = map[string]map[string]string{
	"employee_id": {
		"notblank": "Employee ID is required",
		"code":     "Employee ID must be alphanumeric",
	},
	"full_name": {
		"notblank": "Full name is required",
		"fullname": "Full name must be at least 2 characters",
	},
	"email": {
		"notblank":   "Email is required",
		"looseemail": "Invalid email format",
	},
	"department": {
		"notblank":   "Department is required",
		"department": "Department must be one of the listed departments",
	},
}

var markMessages = map[string]map[string]string{
	"employee_id": {
		"notblank": "Select an employee",
	},
	"date": {
		"notblank":  "Select a date",
		"day":       "Date must be in YYYY-MM-DD format",
		"notfuture": "Attendance cannot be marked for a future date",
	},
}

// Validator checks forms against the configured department list.
type Validator struct {
	v           *validator.Validate
	departments map[string]struct{}
	ordered     []string
	now         func() time.Time
}

func NewValidator(departments []string) *Validator {
	val := &Validator{
		v:           validator.New(),
		departments: make(map[string]struct{}, len(departments)),
		ordered:     append([]string(nil), departments...),
		now:         time.Now,
	}
	for _, d := range departments {
		val.departments[d] = struct{}{}
	}

	val.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
	})

	mustRegister(val.v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(val.v, "code", func(fl validator.FieldLevel) bool {
		return codeRegex.MatchString(fl.Field().String())
	})
	mustRegister(val.v, "fullname", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= 2
	})
	mustRegister(val.v, "looseemail", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	mustRegister(val.v, "department", func(fl validator.FieldLevel) bool {
		_, ok := val.departments[fl.Field().String()]
		return ok
	})
	mustRegister(val.v, "day", func(fl validator.FieldLevel) bool {
		_, err := date.ParseDate(fl.Field().String())
		return err == nil
	})
	mustRegister(val.v, "notfuture", func(fl validator.FieldLevel) bool {
		d, err := date.ParseDate(fl.Field().String())
		if err != nil {
			return false
		}
		return !d.Time.After(today(val.now()))
	})

	return val
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Validate returns the errors of f; an empty map means f may be submitted.
func (val *Validator) Validate(f Employee) entity.FieldErrors {
	return val.check(f, messages)
}

// ValidateMark checks the Mark-Attendance selection.
func (val *Validator) ValidateMark(f Mark) entity.FieldErrors {
	return val.check(f, markMessages)
}

// Departments lists the accepted departments in configured order.
func (val *Validator) Departments() []string {
	return append([]string(nil), val.ordered...)
}

func (val *Validator) check(s interface{}, catalog map[string]map[string]string) entity.FieldErrors {
	fields := entity.FieldErrors{}

	err := val.v.Struct(s)
	if err == nil {
		return fields
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields.Set("form", err.Error())
		return fields
	}
	for _, fe := range verrs {
		msg := catalog[fe.Field()][fe.Tag()]
		if msg == "" {
			msg = fe.Error()
		}
		fields[fe.Field()] = append(fields[fe.Field()], msg)
	}
	return fields
}

// Merge overlays server errors on local ones; the server wins per field.
func Merge(local, server entity.FieldErrors) entity.FieldErrors {
	return entity.Merge(local, server)
}

// Trimmed strips surrounding blanks before the form is sent.
func (f Employee) Trimmed() Employee {
	return Employee{
		EmployeeID: strings.TrimSpace(f.EmployeeID),
		FullName:   strings.TrimSpace(f.FullName),
		Email:      strings.TrimSpace(f.Email),
		Department: strings.TrimSpace(f.Department),
	}
}
