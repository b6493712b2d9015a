package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBrandDB_CompletionScore_Empty(t *testing.T) {
	b := &BrandDB{}
	assert.Equal(t, 0, b.CompletionScore())
}

func TestBrandDB_CompletionScore_NameOnly(t *testing.T) {
	b := &BrandDB{Name: "Acme"}
	// round(100 * 1/9) = 11
	assert.Equal(t, 11, b.CompletionScore())
}

func TestBrandDB_CompletionScore_AllFilled(t *testing.T) {
	b := &BrandDB{
		Name:        "Acme",
		Description: strPtr("d"),
		Industry:    strPtr("Apparel"),
		Website:     strPtr("https://acme.test"),
		Email:       strPtr("hello@acme.test"),
		Phone:       strPtr("555-0100"),
		Address:     strPtr("1 Main St"),
		City:        strPtr("Springfield"),
		State:       strPtr("IL"),
	}
	assert.Equal(t, 100, b.CompletionScore())
}

func TestBrandDB_CompletionScore_EmptyStringsDoNotCount(t *testing.T) {
	b := &BrandDB{
		Name:        "Acme",
		Description: strPtr(""),
		Industry:    strPtr(""),
	}
	assert.Equal(t, 11, b.CompletionScore())
}

func TestBrandDB_CompletionScore_Idempotent(t *testing.T) {
	b := &BrandDB{Name: "Acme", Industry: strPtr("Apparel"), City: strPtr("Austin")}
	first := b.CompletionScore()
	b.ProfileCompletionScore = first
	assert.Equal(t, first, b.CompletionScore())
	assert.GreaterOrEqual(t, first, 0)
	assert.LessOrEqual(t, first, 100)
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"prospective", "pending", "active", "inactive"} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("terminated"))
	assert.False(t, IsValidStatus(""))
}

func TestIsValidPriority(t *testing.T) {
	for _, p := range []string{"low", "normal", "high"} {
		assert.True(t, IsValidPriority(p), p)
	}
	assert.False(t, IsValidPriority("urgent"))
}

func TestIsValidPermissionLevel(t *testing.T) {
	for _, p := range []string{"public", "partners_only", "private"} {
		assert.True(t, IsValidPermissionLevel(p), p)
	}
	assert.False(t, IsValidPermissionLevel("everyone"))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 20, 45)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = NewPagination(3, 20, 45)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = NewPagination(1, 20, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
