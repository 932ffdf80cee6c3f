package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSelectionAllows(t *testing.T) {
	s := NewFilterSelection()
	s.Set(FieldGender, "Female")

	assert.True(t, s.Allows(FieldGender, "Female"))
	assert.False(t, s.Allows(FieldGender, "Male"))

	// Unconstrained fields pass everything.
	assert.True(t, s.Allows(FieldAgeGroup, "65+"))
}

func TestFilterSelectionEmptySet(t *testing.T) {
	s := NewFilterSelection()
	s.Set(FieldSmoking)

	assert.False(t, s.IsEmpty())
	assert.False(t, s.Allows(FieldSmoking, "never"))
}
