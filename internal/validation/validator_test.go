package validation

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testParams struct {
	Name  string `validate:"required,max=5"`
	Count uint16 `validate:"gt=0"`
}

func TestViolations(t *testing.T) {
	err := GetValidator().ValidateStruct(testParams{Name: "", Count: 0})
	require.Error(t, err)

	violations := Violations(err)
	require.Len(t, violations, 2)
	assert.Equal(t, Violation{Field: "Name", Tag: "required"}, violations[0])
	assert.Equal(t, Violation{Field: "Count", Tag: "gt", Param: "0"}, violations[1])
}

func TestViolations_NotAValidationError(t *testing.T) {
	assert.Nil(t, Violations(errors.New("boom")))
	assert.Nil(t, Violations(nil))
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.NoError(t, GetValidator().ValidateStruct(testParams{Name: "ok", Count: 1}))
}

func TestGetValidator_SharedInstance(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Validator, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = GetValidator()
		}(i)
	}
	wg.Wait()

	for _, v := range got {
		assert.Same(t, got[0], v)
	}
}
