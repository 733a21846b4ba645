// Package constants holds provider and driver names shared across layers.
package constants

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Pub/Sub providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// QR code payload type for restaurant review links.
const QRCodeTypeRestaurantReview = "restaurant_review"
