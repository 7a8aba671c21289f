package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateStorefrontQR generates a QR code pointing at a vendor storefront.
	GenerateStorefrontQR(vendorID uuid.UUID) ([]byte, error)

	// ParseStorefrontQR parses QR code data and returns the vendor ID.
	ParseStorefrontQR(qrData string) (uuid.UUID, error)
}
