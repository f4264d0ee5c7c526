package model

// Service is a catalog entry. Entries are provisioned out of band and keep
// the store's native string key, so there is no write path and no ObjectID
// conversion on this collection.
type Service struct {
	ID          string  `bson:"_id" json:"_id"`
	Title       string  `bson:"title" json:"title"`
	Price       float64 `bson:"price" json:"price"`
	Img         string  `bson:"img,omitempty" json:"img,omitempty"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Facility    []any   `bson:"facility,omitempty" json:"facility,omitempty"`
}

// ServiceSummary is the projection returned by the single-service lookup:
// title, price and img only, even when the stored document has more fields.
type ServiceSummary struct {
	Title string  `bson:"title" json:"title"`
	Price float64 `bson:"price" json:"price"`
	Img   string  `bson:"img,omitempty" json:"img,omitempty"`
}
