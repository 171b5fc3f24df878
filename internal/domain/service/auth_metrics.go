package service

// AuthMetrics records the outcome of each auth flow step, e.g. ("signup", "begin_ok").
type AuthMetrics interface {
	Record(flow, outcome string)
}
