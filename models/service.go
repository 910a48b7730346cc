package models

// Category groups services for catalog browsing.
// The pseudo-category "all" is not stored; the catalog expands it to every service.
type Category struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Icon string `bson:"icon" json:"icon"`
}

// CategoryAll is the pseudo-category id that matches every service.
const CategoryAll = "all"

// Service is an immutable catalog entry.
type Service struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Price       int    `bson:"price" json:"price"`       // minor currency units, > 0
	Duration    int    `bson:"duration" json:"duration"` // minutes, > 0
	Category    string `bson:"category" json:"category"` // references Category.ID
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
}
