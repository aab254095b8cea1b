package common

// Logical keys of the backing key-value store. The configured key prefix is
// prepended to both.
const (
	SessionKey = "user"
	DataKey    = "data"
)

// DefaultKeyPrefix reproduces the key layout of the browser build
// ("mindful_user", "mindful_data").
const DefaultKeyPrefix = "mindful_"
