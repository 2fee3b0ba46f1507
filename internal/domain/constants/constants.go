// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Object store buckets
const (
	BucketProductImages  = "product-images"
	BucketCategoryImages = "category-images"
)

// OrderNumberPrefix is prepended to every generated order number.
const OrderNumberPrefix = "ORD-"
