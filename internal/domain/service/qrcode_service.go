package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReviewQR generates a PNG QR code pointing at a restaurant's reviews
	GenerateReviewQR(restaurantID int64) ([]byte, error)

	// ParseReviewQR parses QR code data and returns the restaurant ID
	ParseReviewQR(qrData string) (int64, error)
}
