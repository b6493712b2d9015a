package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	for _, s := range []string{"retailer_admin", "retailer_buyer", "brand_admin", "user"} {
		r, err := Parse(s)
		assert.NoError(t, err)
		assert.Equal(t, s, r.String())
	}

	_, err := Parse("superadmin")
	assert.Error(t, err)

	// Substring matches must not be accepted.
	_, err = Parse("retailer")
	assert.Error(t, err)
}

func TestParseCompanyType(t *testing.T) {
	ct, err := ParseCompanyType("brand")
	assert.NoError(t, err)
	assert.Equal(t, CompanyBrand, ct)

	_, err = ParseCompanyType("vendor")
	assert.Error(t, err)
}

func TestForCompanyType(t *testing.T) {
	assert.Equal(t, BrandAdmin, ForCompanyType(CompanyBrand))
	assert.Equal(t, RetailerAdmin, ForCompanyType(CompanyRetailer))
}

func TestPredicates(t *testing.T) {
	assert.True(t, RetailerAdmin.IsRetailer())
	assert.True(t, RetailerBuyer.IsRetailer())
	assert.False(t, BrandAdmin.IsRetailer())

	assert.True(t, BrandAdmin.IsBrand())
	assert.False(t, RetailerBuyer.IsBrand())

	assert.True(t, RetailerAdmin.IsAdmin())
	assert.True(t, BrandAdmin.IsAdmin())
	assert.False(t, RetailerBuyer.IsAdmin())
	assert.False(t, Basic.IsAdmin())
}
