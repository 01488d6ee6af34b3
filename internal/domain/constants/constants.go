// Package constants holds shared domain-level constants.
package constants

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// CheckoutReferencePrefix prefixes generated checkout references.
const CheckoutReferencePrefix = "ORDA"
