// Package constants holds string values shared between configuration and the layers that read it.
package constants

// Environment names as configured under env.env.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Presence broadcast providers as configured under pubsub.provider.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderFirebase = "firebase"
)

// Auth flows, used as metric labels and log attributes.
const (
	FlowLogin   = "login"
	FlowSession = "session"
	FlowLogout  = "logout"
	FlowSignup  = "signup"
	FlowReset   = "reset"
	FlowProfile = "profile"
)
