package form

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/textutil"

	"github.com/go-playground/validator/v10"
)

// Values holds raw form input keyed by field key. Checkboxes use "on" or "true".
type Values map[string]string

func (v Values) get(key string) string {
	return strings.TrimSpace(v[key])
}

// text is the value as it will be stored: free text loses its markup, so a
// field holding only tags counts as empty.
func (v Values) text(f Field) string {
	if f.Kind == KindText || f.Kind == KindTextArea {
		return strings.TrimSpace(textutil.StripHTML(v.get(f.Key)))
	}
	return v.get(f.Key)
}

var validate = validator.New()

const (
	reasonRequired = "required"
	reasonTooLong  = "too long"
	reasonOption   = "not a valid option"
	reasonEmail    = "not a valid email address"
	reasonChecked  = "must be checked"
)

func checked(v string) bool {
	switch strings.ToLower(v) {
	case "on", "true", "yes", "1":
		return true
	}
	return false
}

// ValidateStep checks every field of step n. All offending fields are listed;
// the first one is reported as Field. A signed-in creator does not need an email.
func ValidateStep(n int, values Values, signedIn bool) error {
	step, ok := stepByNumber(n)
	if !ok {
		return &domain.ValidationError{Step: n, Reason: fmt.Sprintf("unknown step %d", n)}
	}

	var fields, reasons []string
	for _, f := range step.Fields {
		if reason := checkField(f, values.text(f), signedIn); reason != "" {
			fields = append(fields, f.Key)
			reasons = append(reasons, reason)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Step: n, Field: fields[0], Fields: fields, Reason: reasons[0]}
}

func checkField(f Field, v string, signedIn bool) string {
	required := f.Required && !(f.Key == KeyCreatorEmail && signedIn)

	switch {
	case f.Kind == KindCheckbox:
		if required && !checked(v) {
			return reasonChecked
		}
	case v == "":
		if required {
			return reasonRequired
		}
	case f.MaxLen > 0 && utf8.RuneCountInString(v) > f.MaxLen:
		return reasonTooLong
	case len(f.Options) > 0 && !contains(f.Options, v):
		return reasonOption
	case f.Kind == KindEmail && validate.Var(v, "email") != nil:
		return reasonEmail
	}
	return ""
}

func contains(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}

// Validate checks all steps in order and returns the first failure.
func Validate(values Values, signedIn bool) error {
	for n := 1; n <= TotalSteps(); n++ {
		if err := ValidateStep(n, values, signedIn); err != nil {
			return err
		}
	}
	return nil
}

// Build validates the whole form and shapes it into a submission payload.
// Free text is stripped of markup; unknown keys are kept as extra attributes.
func Build(values Values, signedIn bool) (domain.SubmissionPayload, error) {
	if err := Validate(values, signedIn); err != nil {
		return domain.SubmissionPayload{}, err
	}

	known := map[string]bool{KeyName: true, KeyType: true, KeyDescription: true, KeyCreatorEmail: true, KeyTerms: true}
	attrs := make(map[string]string)
	for k, v := range values {
		if known[k] {
			continue
		}
		if v = textutil.StripHTML(v); v != "" {
			attrs[k] = v
		}
	}

	a := domain.AttributesFromMap(attrs)
	if a.Collaboration == "" {
		a.Collaboration = domain.CollaborationLocked
	}

	return domain.SubmissionPayload{
		Name:         textutil.StripHTML(values.get(KeyName)),
		Type:         domain.ParseWorldType(values.get(KeyType)),
		Description:  textutil.StripHTML(values.get(KeyDescription)),
		CreatorEmail: values.get(KeyCreatorEmail),
		Locked:       a.Collaboration == domain.CollaborationLocked,
		Attributes:   a,
	}, nil
}

var imageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/avif": true,
	"image/webp": true,
}

const MaxImageSize = 10 << 20

// ValidateImage checks attachment metadata before upload.
func ValidateImage(contentType string, size int64) error {
	if !imageTypes[strings.ToLower(strings.TrimSpace(contentType))] {
		return &domain.ValidationError{Field: domain.KeyImageURL, Fields: []string{domain.KeyImageURL},
			Reason: "image must be PNG, JPG, AVIF or WEBP"}
	}
	if size > MaxImageSize {
		return &domain.ValidationError{Field: domain.KeyImageURL, Fields: []string{domain.KeyImageURL},
			Reason: "image must be smaller than 10MB"}
	}
	return nil
}
