package model

import "time"

// License records that a user was issued a license by a group authority.
// The document id is the user id, which caps each user at one license
// and makes concurrent issuance admit exactly one winner.
type License struct {
	UserID   int64     `json:"user_id" bson:"_id"`
	IssuedBy int64     `json:"issued_by" bson:"issued_by"`
	IssuedAt time.Time `json:"issued_at" bson:"issued_at"`
}
