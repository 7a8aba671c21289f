// Package entity contains the core business objects of the project.
package entity

// Destination is a logical navigation target the client router understands.
// The server never navigates anywhere itself; it only tells the client where
// a freshly signed-in user belongs.
type Destination string

const (
	// DestinationVendorHome is the vendor-facing home surface.
	DestinationVendorHome Destination = "vendor_home"
	// DestinationCustomerHome is the customer-facing home surface.
	DestinationCustomerHome Destination = "customer_home"
	// DestinationSignIn is the entry / sign-in surface.
	DestinationSignIn Destination = "sign_in"
)

// String returns the string representation of the Destination.
func (d Destination) String() string {
	return string(d)
}

// ResolveDestination maps a role to its post-login destination.
//
// Admins currently land on the vendor surface; there is no dedicated admin
// surface yet. Unknown or empty roles fall back to the customer home so a
// missing profile never strands the user on a blank screen.
func ResolveDestination(role Role) Destination {
	switch role {
	case RoleVendor, RoleAdmin:
		return DestinationVendorHome
	case RoleCustomer:
		return DestinationCustomerHome
	default:
		return DestinationCustomerHome
	}
}
