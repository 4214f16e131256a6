package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		details ContactDetails
		want    map[string]string
	}{
		{
			name:    "all empty yields exactly three errors",
			details: ContactDetails{},
			want: map[string]string{
				"name":  "Name is required",
				"email": "Email is required",
				"phone": "Phone number is required",
			},
		},
		{
			name:    "whitespace counts as empty",
			details: ContactDetails{Name: "   ", Email: "\t", Phone: " "},
			want: map[string]string{
				"name":  "Name is required",
				"email": "Email is required",
				"phone": "Phone number is required",
			},
		},
		{
			name:    "invalid email and short phone, name fine",
			details: ContactDetails{Name: "Jo", Email: "not-an-email", Phone: "12345"},
			want: map[string]string{
				"email": "Email is invalid",
				"phone": "Phone number must be 10 digits",
			},
		},
		{
			name:    "formatted phone with ten digits is accepted",
			details: ContactDetails{Name: "Jo", Email: "a@b.co", Phone: "(555) 123-4567"},
			want:    map[string]string{},
		},
		{
			name:    "eleven digits rejected",
			details: ContactDetails{Name: "Jo", Email: "a@b.co", Phone: "15551234567"},
			want: map[string]string{
				"phone": "Phone number must be 10 digits",
			},
		},
		{
			name:    "email needs a dot after the at",
			details: ContactDetails{Name: "Jo", Email: "jo@localhost", Phone: "5551234567"},
			want: map[string]string{
				"email": "Email is invalid",
			},
		},
		{
			name:    "notes are never validated",
			details: ContactDetails{Name: "Jo", Email: "a@b.co", Phone: "5551234567", Notes: ""},
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.details)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateHasNoSideEffects(t *testing.T) {
	d := ContactDetails{Name: "Jo", Email: "bad", Phone: "123"}
	first := Validate(d)
	second := Validate(d)
	assert.Equal(t, first, second)
	assert.Equal(t, ContactDetails{Name: "Jo", Email: "bad", Phone: "123"}, d)
}
