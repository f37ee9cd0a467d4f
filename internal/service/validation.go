package service

import (
	"net/mail"
	"strings"
)

// FieldError описывает ошибку одного поля формы.
type FieldError struct {
	Field string
	Msg   string
	Type  string
}

// ValidationError - ошибка клиентского ввода; хендлеры отдают её как 422.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// SubmitInput - поля формы заявки. Тип заявки определяется маршрутом.
type SubmitInput struct {
	Title       string
	Category    string
	Description string
	Location    string
	Date        string
	OwnerName   string
	OwnerEmail  string
	OwnerPhone  *string
}

// Validate проверяет обязательные поля и синтаксис email.
// Значение из одних пробелов считается отсутствующим.
func (in SubmitInput) Validate() error {
	var errs []FieldError
	required := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"category", in.Category},
		{"description", in.Description},
		{"location", in.Location},
		{"date", in.Date},
		{"owner_name", in.OwnerName},
		{"owner_email", in.OwnerEmail},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, FieldError{Field: f.name, Msg: "field required", Type: "missing"})
		}
	}
	if strings.TrimSpace(in.OwnerEmail) != "" && !ValidEmail(in.OwnerEmail) {
		errs = append(errs, FieldError{
			Field: "owner_email",
			Msg:   "value is not a valid email address",
			Type:  "value_error",
		})
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// ValidEmail принимает только голый адрес вида local@domain.tld, без имени и угловых скобок.
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
