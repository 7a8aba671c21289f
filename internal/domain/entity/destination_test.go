package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDestination(t *testing.T) {
	testCases := []struct {
		name string
		role Role
		want Destination
	}{
		{name: "customer lands on customer home", role: RoleCustomer, want: DestinationCustomerHome},
		{name: "vendor lands on vendor home", role: RoleVendor, want: DestinationVendorHome},
		{name: "admin lands on vendor home", role: RoleAdmin, want: DestinationVendorHome},
		{name: "unknown role falls back to customer home", role: Role("moderator"), want: DestinationCustomerHome},
		{name: "empty role falls back to customer home", role: Role(""), want: DestinationCustomerHome},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveDestination(tc.role))
		})
	}
}

func TestRolesFromStringsFiltersInvalidValues(t *testing.T) {
	roles := RolesFromStrings([]string{"customer", "vendor", "superuser", ""})

	assert.Equal(t, Roles{RoleCustomer, RoleVendor}, roles)
}

func TestRolesContains(t *testing.T) {
	roles := Roles{RoleVendor}

	assert.True(t, roles.Contains(RoleVendor))
	assert.False(t, roles.Contains(RoleCustomer))
}
