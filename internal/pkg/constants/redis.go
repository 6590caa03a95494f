package constants

// Redis key formats
const (
	KeyCourierGeo       = "couriers:geo"         // GeoHash set of available courier positions
	KeyAvailableCourier = "couriers:available"   // Set of available courier IDs
	KeyCourierLocation  = "courier:location:%s"  // Format: courier:location:{courier_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geo"
	FieldTimestamp = "ts"
)
