package geo

import (
	"log"
	"net"

	"FlowScope/internal/core/model"

	"github.com/biter777/countries"
	"github.com/oschwald/maxminddb-golang"
)

// cityRecord is the subset of the MaxMind city schema the resolver reads.
type cityRecord struct {
	Country struct {
		ISOCode string            `maxminddb:"iso_code"`
		Names   map[string]string `maxminddb:"names"`
	} `maxminddb:"country"`
	Location struct {
		Latitude  float64 `maxminddb:"latitude"`
		Longitude float64 `maxminddb:"longitude"`
	} `maxminddb:"location"`
}

// cacheEntry records the outcome of one lookup, resolved or not, so a
// heavy talker appearing in dozens of flows costs a single database read.
type cacheEntry struct {
	point model.GeoPoint
	ok    bool
}

// Resolver maps IP addresses to locations using a local MaxMind database.
// One resolver (and its cache) is scoped to a single pipeline run; it is
// not safe for concurrent use and must not be shared across searches.
//
// If the database file is missing or unreadable the resolver enters a
// degraded mode where every lookup is unresolved; Degraded reports this
// once-per-run condition to the caller.
type Resolver struct {
	reader   *maxminddb.Reader
	cache    map[string]cacheEntry
	degraded bool
}

// NewResolver opens the database at dbPath. A missing or corrupt database
// is not fatal: the returned resolver is degraded, not nil.
func NewResolver(dbPath string) *Resolver {
	r := &Resolver{cache: make(map[string]cacheEntry)}

	reader, err := maxminddb.Open(dbPath)
	if err != nil {
		log.Printf("Geo database unavailable (%v), resolver running degraded: all lookups will be unresolved", err)
		r.degraded = true
		return r
	}
	r.reader = reader
	return r
}

// Degraded reports whether the geo database is unavailable.
func (r *Resolver) Degraded() bool {
	return r.degraded
}

// Close releases the database handle. Safe to call on a degraded resolver.
func (r *Resolver) Close() {
	if r.reader != nil {
		r.reader.Close()
	}
}

// Resolve looks up ip and returns its location, or ok=false for private,
// reserved, unparsable or unknown addresses. Both outcomes are cached for
// the lifetime of the resolver.
func (r *Resolver) Resolve(ip string) (model.GeoPoint, bool) {
	if entry, ok := r.cache[ip]; ok {
		return entry.point, entry.ok
	}

	point, ok := r.lookup(ip)
	r.cache[ip] = cacheEntry{point: point, ok: ok}
	return point, ok
}

func (r *Resolver) lookup(ip string) (model.GeoPoint, bool) {
	parsed := net.ParseIP(ip)
	if parsed == nil || !routable(parsed) {
		return model.GeoPoint{}, false
	}
	if r.degraded {
		return model.GeoPoint{}, false
	}

	var record cityRecord
	if err := r.reader.Lookup(parsed, &record); err != nil {
		return model.GeoPoint{}, false
	}
	// An address absent from the database decodes to the zero record.
	if record.Country.ISOCode == "" && record.Location.Latitude == 0 && record.Location.Longitude == 0 {
		return model.GeoPoint{}, false
	}

	return model.GeoPoint{
		IP:        ip,
		Country:   countryName(record),
		Latitude:  record.Location.Latitude,
		Longitude: record.Location.Longitude,
	}, true
}

// routable reports whether ip is a public, lookup-worthy address.
// Private, loopback, link-local, multicast and unspecified ranges are
// expected unresolved outcomes, not faults.
func routable(ip net.IP) bool {
	return !(ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsMulticast() || ip.IsUnspecified())
}

// countryName prefers the database's English name and falls back to the
// ISO code registry for records that carry only a code.
func countryName(record cityRecord) string {
	if name, ok := record.Country.Names["en"]; ok && name != "" {
		return name
	}
	if record.Country.ISOCode != "" {
		if c := countries.ByName(record.Country.ISOCode); c != countries.Unknown {
			return c.String()
		}
		return record.Country.ISOCode
	}
	return ""
}
