package validation

import (
	"encoding/json"
	"testing"

	"go-marketplace-backend/pkg/optional"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workerInput struct {
	Name   string   `validate:"required,valid_name"`
	Phone  string   `validate:"omitempty,valid_phone"`
	Bio    string   `validate:"no_emoji"`
	Skills []string `validate:"skill_list"`
}

type workerPatch struct {
	Phone      optional.Value[string]   `validate:"omitempty,valid_phone"`
	HourlyRate optional.Value[float64]  `validate:"omitempty,gt=0"`
	Skills     optional.Value[[]string] `validate:"omitempty,skill_list"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name  string
		input workerInput
		valid bool
	}{
		{"valid", workerInput{Name: "Ana O'Neil", Phone: "+1 (555) 123-4567", Bio: "Licensed plumber", Skills: []string{"Plumbing", "Tiling"}}, true},
		{"bad name", workerInput{Name: "Ana<script>", Skills: []string{}}, false},
		{"short phone", workerInput{Name: "Ana", Phone: "123", Skills: []string{}}, false},
		{"emoji bio", workerInput{Name: "Ana", Bio: "hi 🔧", Skills: []string{}}, false},
		{"blank skill", workerInput{Name: "Ana", Skills: []string{"Plumbing", "  "}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOptionalFieldsValidation(t *testing.T) {
	v := newValidator()

	t.Run("absent and null fields are skipped", func(t *testing.T) {
		var p workerPatch
		require.NoError(t, json.Unmarshal([]byte(`{"Phone":null}`), &p))
		assert.NoError(t, v.Struct(p))
	})

	t.Run("present values are validated", func(t *testing.T) {
		var p workerPatch
		require.NoError(t, json.Unmarshal([]byte(`{"Phone":"12","HourlyRate":-4}`), &p))
		err := v.Struct(p)
		require.Error(t, err)
		msgs := FormatValidationErrors(err)
		assert.Len(t, msgs, 2)
		assert.Contains(t, msgs[0], "Phone number")
		assert.Contains(t, msgs[1], "Hourly rate must be greater than 0")
	})
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator()

	type jobInput struct {
		Title  string `validate:"required"`
		Status string `validate:"oneof=OPEN CLOSED"`
	}

	err := v.Struct(jobInput{Status: "DRAFT"})
	require.Error(t, err)
	assert.Equal(t, []string{"Title is required", "Status must be one of: OPEN, CLOSED"}, FormatValidationErrors(err))
	assert.Equal(t, "Title is required; Status must be one of: OPEN, CLOSED", Message(err))

	assert.Equal(t, "Pay Rate", formatCamelCase("PayRate"))
}
