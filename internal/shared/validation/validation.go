// Package validation wraps go-playground/validator with the portal's custom
// tags and turns its errors into per-field messages for API responses.
package validation

import (
	"errors"
	"net"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError is one rejected input field.
type FieldError struct {
	Path     string `json:"path"`
	Msg      string `json:"msg"`
	Location string `json:"location"`
}

// Errors is the full set of field violations for a request.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Path+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Paths lists the rejected field names in order.
func (e Errors) Paths() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.Path)
	}
	return out
}

// Messages maps "<json field>.<tag>" to a human message. A "<json field>"
// key without a tag is the fallback for that field.
type Messages map[string]string

var (
	once     sync.Once
	validate *validator.Validate

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	phonePattern    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	hostLabel       = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)
)

// Validator returns the shared validator with custom tags registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("mobile_phone", func(fl validator.FieldLevel) bool {
			return IsMobilePhone(fl.Field().String())
		})
		_ = v.RegisterValidation("resume_url", func(fl validator.FieldLevel) bool {
			return IsURL(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Struct validates s and reports every failing field using msgs.
// It returns nil when s is valid.
func Struct(s any, msgs Messages) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Path:     fe.Field(),
			Msg:      message(fe, msgs),
			Location: "body",
		})
	}
	return out
}

func message(fe validator.FieldError, msgs Messages) string {
	if msg, ok := msgs[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := msgs[fe.Field()]; ok {
		return msg
	}
	return "Invalid value"
}

// IsMobilePhone accepts an optional leading "+" followed by 7 to 15 digits.
// Spaces, dashes, dots and parentheses are ignored.
func IsMobilePhone(raw string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(strings.TrimSpace(raw)))
}

// IsURL accepts http, https and ftp URLs with a dotted host and no userinfo.
// The scheme may be omitted, in which case http is assumed.
func IsURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, " \t\r\n") {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.User != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp":
	default:
		return false
	}
	host := u.Hostname()
	if host == "" {
		return false
	}
	if ip := net.ParseIP(host); ip != nil {
		return true
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !hostLabel.MatchString(label) {
			return false
		}
	}
	tld := labels[len(labels)-1]
	return len(tld) >= 2 && !strings.ContainsAny(tld, "0123456789")
}
