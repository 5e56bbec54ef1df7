package domain

// DefaultAlertThreshold is the severity at which a subscription alerts when
// the subscriber has not chosen one.
const DefaultAlertThreshold = SeverityHeavy

// Subscription stores a chat user's watched locations and alert threshold.
// The schema is provisioned ahead of the alerting flow; no code path reads
// or writes it yet.
type Subscription struct {
	UserID         int64    `json:"user_id" bson:"user_id"`
	Locations      []string `json:"locations" bson:"locations"`
	AlertThreshold Severity `json:"alert_threshold" bson:"alert_threshold"`
}
