package form

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
)

func validValues() Values {
	return Values{
		KeyName:                 "Nova Point",
		KeyType:                 "ocean",
		KeyDescription:          "A world of endless tides",
		domain.KeyInhabitants:   "Tide folk",
		domain.KeyLegends:       "<b>The drowned crown</b>",
		domain.KeyCreatorName:   "Ada",
		KeyCreatorEmail:         "ada@example.com",
		domain.KeyCollaboration: "open",
		KeyTerms:                "on",
	}
}

func validationError(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return ve
}

func TestValidateStep_RequiredFields(t *testing.T) {
	values := validValues()
	if err := ValidateStep(1, values, false); err != nil {
		t.Fatalf("filled step rejected: %v", err)
	}

	values[KeyName] = "   "
	values[KeyDescription] = ""
	ve := validationError(t, ValidateStep(1, values, false))
	if ve.Step != 1 || ve.Field != KeyName || ve.Reason != reasonRequired {
		t.Errorf("unexpected error: %+v", ve)
	}
	if !reflect.DeepEqual(ve.Fields, []string{KeyName, KeyDescription}) {
		t.Errorf("flagged fields = %v", ve.Fields)
	}
}

func TestValidateStep_Rules(t *testing.T) {
	tests := []struct {
		name      string
		step      int
		key       string
		value     string
		signedIn  bool
		wantField string
		wantOK    bool
	}{
		{"name too long", 1, KeyName, strings.Repeat("n", MaxNameLength+1), false, KeyName, false},
		{"name at limit", 1, KeyName, strings.Repeat("n", MaxNameLength), false, "", true},
		{"description too long", 1, KeyDescription, strings.Repeat("d", MaxDescriptionLength+1), false, KeyDescription, false},
		{"unknown type", 1, KeyType, "nebula", false, KeyType, false},
		{"lore too long", 4, domain.KeyHistory, strings.Repeat("h", MaxLoreLength+1), false, domain.KeyHistory, false},
		{"optional lore empty", 2, domain.KeyInhabitants, "", false, "", true},
		{"bad tech level", 3, domain.KeyTechLevel, "steampunk", false, domain.KeyTechLevel, false},
		{"email missing", 5, KeyCreatorEmail, "", false, KeyCreatorEmail, false},
		{"email missing but signed in", 5, KeyCreatorEmail, "", true, "", true},
		{"email malformed", 5, KeyCreatorEmail, "not-an-email", true, KeyCreatorEmail, false},
		{"terms unchecked", 5, KeyTerms, "", false, KeyTerms, false},
		{"terms true", 5, KeyTerms, "true", false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			values[tt.key] = tt.value

			err := ValidateStep(tt.step, values, tt.signedIn)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if ve := validationError(t, err); ve.Field != tt.wantField {
				t.Errorf("field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestValidateStep_UnknownStep(t *testing.T) {
	if err := ValidateStep(9, Values{}, false); !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestWizard_Navigation(t *testing.T) {
	w := NewWizard(false)

	if err := w.Next(); err == nil {
		t.Fatal("advancing past empty basics should fail")
	}
	if w.Current() != 1 {
		t.Errorf("current = %d, want 1", w.Current())
	}

	for k, v := range validValues() {
		w.Set(k, v)
	}
	w.Set(KeyTerms, "")

	if err := w.Next(); err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if w.Current() != 2 || w.Progress() != 40 {
		t.Errorf("current = %d progress = %v", w.Current(), w.Progress())
	}

	w.Back()
	w.Back()
	if w.Current() != 1 {
		t.Errorf("current = %d, want 1", w.Current())
	}

	if err := w.GoTo(5); err != nil {
		t.Fatalf("GoTo(5) failed: %v", err)
	}
	if !w.IsLast() {
		t.Error("expected to be on the last step")
	}

	if _, err := w.Submit(); validationError(t, err).Field != KeyTerms {
		t.Errorf("submit should fail on the terms checkbox, got %v", err)
	}

	w.Set(KeyTerms, "on")
	payload, err := w.Submit()
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if payload.Name != "Nova Point" {
		t.Errorf("name = %q", payload.Name)
	}
}

func TestWizard_GoToLandsOnFirstFailingStep(t *testing.T) {
	w := NewWizard(false)
	for k, v := range validValues() {
		w.Set(k, v)
	}
	w.Set(domain.KeyTechLevel, "steampunk")

	err := w.GoTo(5)
	if ve := validationError(t, err); ve.Step != 3 {
		t.Errorf("failing step = %d, want 3", ve.Step)
	}
	if w.Current() != 3 {
		t.Errorf("current = %d, want 3", w.Current())
	}
}

func TestBuild_ShapesPayload(t *testing.T) {
	values := validValues()
	values["quadrant"] = "Outer Rim"

	p, err := Build(values, false)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if p.Type != domain.TypeOcean {
		t.Errorf("type = %q", p.Type)
	}
	if p.Attributes.Legends != "The drowned crown" {
		t.Errorf("legends = %q, want markup stripped", p.Attributes.Legends)
	}
	if p.Attributes.CreatorName != "Ada" || p.CreatorEmail != "ada@example.com" {
		t.Errorf("creator = %q / %q", p.Attributes.CreatorName, p.CreatorEmail)
	}
	if p.Locked || p.Attributes.Collaboration != domain.CollaborationOpen {
		t.Errorf("collaboration = %q locked = %v", p.Attributes.Collaboration, p.Locked)
	}
	if p.Attributes.Extra["quadrant"] != "Outer Rim" {
		t.Errorf("extra = %v", p.Attributes.Extra)
	}
	if _, ok := p.Attributes.Extra[KeyTerms]; ok {
		t.Error("terms checkbox leaked into attributes")
	}
}

func TestBuild_MarkupOnlyRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		step  int
	}{
		{"name", KeyName, "<b></b>", 1},
		{"description", KeyDescription, "<i> </i>", 1},
		{"creator name", domain.KeyCreatorName, "<span></span>", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			values[tt.key] = tt.value

			ve := validationError(t, ValidateStep(tt.step, values, false))
			if ve.Field != tt.key || ve.Reason != reasonRequired {
				t.Errorf("got field %q reason %q, want %q required", ve.Field, ve.Reason, tt.key)
			}

			if _, err := Build(values, false); !domain.IsValidation(err) {
				t.Errorf("Build() stored a markup-only %s, err = %v", tt.key, err)
			}
		})
	}
}

func TestBuild_DefaultsToLocked(t *testing.T) {
	values := validValues()
	delete(values, domain.KeyCollaboration)

	p, err := Build(values, false)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if !p.Locked || p.Attributes.Collaboration != domain.CollaborationLocked {
		t.Errorf("expected locked default, got %q", p.Attributes.Collaboration)
	}
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		contentType string
		size        int64
		wantErr     bool
	}{
		{"image/png", 1024, false},
		{"image/webp", MaxImageSize, false},
		{"IMAGE/JPEG", 10, false},
		{"image/gif", 10, true},
		{"application/pdf", 10, true},
		{"image/avif", MaxImageSize + 1, true},
	}

	for _, tt := range tests {
		err := ValidateImage(tt.contentType, tt.size)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateImage(%q, %d) error = %v, wantErr %v", tt.contentType, tt.size, err, tt.wantErr)
		}
	}
}
