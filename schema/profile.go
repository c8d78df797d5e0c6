package schema

const (
	ProfileCollection = "profile"
)

// Profile - live account state kept in mongo for geo queries
type Profile struct {
	ID            string   `bson:"id"`
	AccountNumber string   `bson:"account_number"`
	Location      *GeoJSON `bson:"location,omitempty"`
	Language      string   `bson:"language,omitempty"`
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}
