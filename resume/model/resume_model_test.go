package model

import "testing"

func TestValidateRequiresScalars(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Resume)
		wantErr bool
	}{
		{"complete", func(r *Resume) {}, false},
		{"missing first name", func(r *Resume) { r.FirstName = "" }, true},
		{"whitespace last name", func(r *Resume) { r.LastName = "   " }, true},
		{"missing email", func(r *Resume) { r.Email = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resume{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"}
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNormalizeTrimsAndDefaults(t *testing.T) {
	r := Resume{
		FirstName: "  Jane ",
		LastName:  "Doe",
		Email:     " jane@x.com ",
		Phone:     " 555-1234 ",
	}
	r.Normalize()

	if r.FirstName != "Jane" {
		t.Fatalf("expected trimmed first name, got %q", r.FirstName)
	}
	if r.Email != "jane@x.com" {
		t.Fatalf("expected trimmed email, got %q", r.Email)
	}
	if r.Template != DefaultTemplate {
		t.Fatalf("expected default template, got %q", r.Template)
	}
	if r.Experience == nil || r.Skills == nil {
		t.Fatalf("expected empty slices after normalize")
	}
}
