package validation

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {
			"type": "string"
		},
		"age": {
			"type": "integer",
			"minimum": 0
		}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	validator := NewSchemaValidator()
	if err := validator.Register("test.schema.json", []byte(testSchema)); err != nil {
		t.Fatalf("Failed to register schema: %v", err)
	}

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid data",
			data:      `{"name": "John", "age": 30}`,
			wantError: false,
		},
		{
			name:      "valid data without optional field",
			data:      `{"name": "Jane"}`,
			wantError: false,
		},
		{
			name:      "missing required field",
			data:      `{"age": 25}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "wrong type for field",
			data:      `{"name": "John", "age": "thirty"}`,
			wantError: true,
			errorMsg:  "age",
		},
		{
			name:      "constraint violation",
			data:      `{"name": "John", "age": -5}`,
			wantError: true,
			errorMsg:  "age",
		},
		{
			name:      "invalid JSON",
			data:      `{"name": "John", "age": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), "test.schema.json")

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
			} else if err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.ValidateBytes([]byte(`{}`), "missing.schema.json")
	if !errors.Is(err, ErrSchemaNotRegistered) {
		t.Errorf("Expected ErrSchemaNotRegistered, got: %v", err)
	}
}

func TestSchemaValidator_RegisterTwice(t *testing.T) {
	validator := NewSchemaValidator()

	if err := validator.Register("test.schema.json", []byte(testSchema)); err != nil {
		t.Fatalf("First register failed: %v", err)
	}
	if err := validator.Register("test.schema.json", []byte(testSchema)); err != nil {
		t.Errorf("Second register should be a no-op, got: %v", err)
	}
}

func TestSchemaValidator_InvalidSchema(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.Register("broken.schema.json", []byte(`{"type": `))
	if err == nil || !strings.Contains(err.Error(), "parse schema") {
		t.Errorf("Expected schema parse error, got: %v", err)
	}
}
