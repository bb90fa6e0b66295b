package model

// Resolver maps an IP address to a geographic location. Implementations
// must treat unresolvable addresses (private, reserved, absent from the
// database) as a normal outcome: ok=false, never an error.
type Resolver interface {
	// Resolve returns the location for ip, or ok=false if the address
	// could not be placed.
	Resolve(ip string) (GeoPoint, bool)

	// Degraded reports whether the underlying geo database is
	// unavailable, in which case every lookup is unresolved. Callers use
	// this to explain an empty map exactly once.
	Degraded() bool
}
