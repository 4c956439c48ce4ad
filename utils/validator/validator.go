package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	phonePattern = regexp.MustCompile(`^\d{10,15}$`)
)

// Messager is implemented by request types that carry their own messages,
// keyed by "<json field>.<tag>".
type Messager interface {
	ValidationMessages() map[string]string
}

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	validate := gpvalidator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = validate.RegisterValidation("phone", func(fl gpvalidator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	// maxbytes bounds the encoded length, unlike max which counts runes
	_ = validate.RegisterValidation("maxbytes", func(fl gpvalidator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	v = validate
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// Validate runs every rule of s and returns all violations in field order,
// or nil when s is valid.
func Validate(s interface{}) []string {
	err := ValidateStruct(s)
	if err == nil {
		return nil
	}

	var table map[string]string
	if m, ok := s.(Messager); ok {
		table = m.ValidationMessages()
	}
	return Messages(err, table)
}

// Messages translates validator errors into human readable messages.
func Messages(err error, table map[string]string) []string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := table[fe.Field()+"."+fe.Tag()]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, defaultMessage(fe))
	}
	return messages
}

func defaultMessage(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s should have a minimum length of %s", fe.Field(), fe.Param())
	case "max", "maxbytes":
		return fmt.Sprintf("%s should have a maximum length of %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
