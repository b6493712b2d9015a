// Package roles defines the closed set of user roles and company types.
// Access checks go through the predicates here rather than matching on
// role substrings.
package roles

import "fmt"

// Role is a user role.
type Role string

const (
	RetailerAdmin Role = "retailer_admin"
	RetailerBuyer Role = "retailer_buyer"
	BrandAdmin    Role = "brand_admin"
	Basic         Role = "user"
)

// CompanyType distinguishes the two sides of the marketplace.
type CompanyType string

const (
	CompanyRetailer CompanyType = "retailer"
	CompanyBrand    CompanyType = "brand"
)

// Parse validates a role string against the closed set.
func Parse(s string) (Role, error) {
	switch Role(s) {
	case RetailerAdmin, RetailerBuyer, BrandAdmin, Basic:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// ParseCompanyType validates a company type string.
func ParseCompanyType(s string) (CompanyType, error) {
	switch CompanyType(s) {
	case CompanyRetailer, CompanyBrand:
		return CompanyType(s), nil
	}
	return "", fmt.Errorf("unknown company type %q", s)
}

// ForCompanyType returns the role assigned at registration.
func ForCompanyType(ct CompanyType) Role {
	if ct == CompanyBrand {
		return BrandAdmin
	}
	return RetailerAdmin
}

// IsRetailer reports whether the role belongs to the retailer side.
func (r Role) IsRetailer() bool {
	return r == RetailerAdmin || r == RetailerBuyer
}

// IsBrand reports whether the role belongs to the brand side.
func (r Role) IsBrand() bool {
	return r == BrandAdmin
}

// IsAdmin reports whether the role carries admin rights for its company.
func (r Role) IsAdmin() bool {
	return r == RetailerAdmin || r == BrandAdmin
}

func (r Role) String() string { return string(r) }

func (ct CompanyType) String() string { return string(ct) }
