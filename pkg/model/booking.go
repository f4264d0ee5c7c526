package model

// Booking documents are schema-free: clients attach whatever checkout fields
// they like and the stored document must round-trip unchanged. Only the keys
// below are interpreted server-side.
type Booking map[string]any

const (
	BookingFieldID     = "_id"
	BookingFieldEmail  = "email"
	BookingFieldStatus = "status"
)

func (b Booking) Email() string {
	email, _ := b[BookingFieldEmail].(string)
	return email
}

func (b Booking) Status() string {
	status, _ := b[BookingFieldStatus].(string)
	return status
}

// InsertResult mirrors the driver's insert acknowledgement so existing
// clients keep seeing {acknowledged, insertedId}.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
