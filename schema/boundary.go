package schema

const (
	BoundaryCollection = "boundary"
)

type Geometry struct {
	Type        string      `bson:"type" json:"type"`
	Coordinates interface{} `bson:"coordinates" json:"coordinates"`
}

// Boundary is one geographic region polygon keyed by its canonical name.
// The geographic aggregation joins listing cities against these regions.
type Boundary struct {
	Canton   string   `bson:"canton" json:"canton"`
	Key      string   `bson:"key" json:"key"`
	Geometry Geometry `bson:"geometry" json:"geometry"`
}
