// Package constants defines shared domain-level constants.
package constants

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Admin event types published on the store events topic.
const (
	EventOrderUpdated     = "order.updated"
	EventBatchIssued      = "recharge.batch_issued"
	EventUserBlockToggled = "user.block_toggled"
)
