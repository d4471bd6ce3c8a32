package domain

import "time"

// CustomerType classifies a customer record. Visibility is decided by the
// caller's role against this type, not by ownership.
type CustomerType string

const (
	CustomerPersonal CustomerType = "personal"
	CustomerCompany  CustomerType = "company"
)

// ValidCustomerType reports whether t is a known customer type.
func ValidCustomerType(t CustomerType) bool {
	return t == CustomerPersonal || t == CustomerCompany
}

// minAddressLength is the minimum combined length, in characters, of all
// addresses on a customer record.
const minAddressLength = 10

// Customer is a record managed by the sales roles.
type Customer struct {
	ID        uint         `json:"id"`
	Name      string       `json:"name"`
	Addresses []string     `json:"addresses"`
	Type      CustomerType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ValidAddresses reports whether the combined length of all addresses meets
// the minimum.
func ValidAddresses(addresses []string) bool {
	total := 0
	for _, a := range addresses {
		total += len(a)
	}
	return total >= minAddressLength
}
