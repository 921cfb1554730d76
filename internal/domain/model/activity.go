package model

// ActivityRecord is the running total of activity minutes reported for
// one user. The document id is the Roblox user id; the total only moves
// through atomic increments, so concurrent reports never lose updates.
type ActivityRecord struct {
	UserID        int64 `json:"user_id" bson:"_id"`
	TotalActivity int64 `json:"total_activity" bson:"total_activity"`
}
