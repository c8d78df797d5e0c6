package consts

const (
	// BROADCAST_DISTANCE_RANGE is the radius in meters used to pick the
	// accounts notified about a new help request near them.
	BROADCAST_DISTANCE_RANGE = 10000

	// DEFAULT_NEARBY_RADIUS_KM is applied when a nearby query does not
	// specify a radius.
	DEFAULT_NEARBY_RADIUS_KM = 5.0

	// MAX_NEARBY_RADIUS_KM caps a nearby query; the distance filter runs
	// in memory without an index.
	MAX_NEARBY_RADIUS_KM = 50.0
)
