package render

import (
	"FlowScope/internal/core/model"

	geojson "github.com/paulmach/go.geojson"
)

// FeatureCollection converts one run's resolved map data into a GeoJSON
// FeatureCollection: a point feature per resolved endpoint (with the IP
// and country as popup metadata) followed by a LineString connection per
// aggregated flow whose source and destination both resolved, carrying
// the flow's endpoints and byte count. Flows with an unresolved end emit
// no line; an empty point set yields an empty collection, the "no
// locations found" placeholder state.
func FeatureCollection(flows []model.AggregatedFlow, points []model.GeoPoint) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	located := make(map[string]model.GeoPoint, len(points))
	for _, p := range points {
		located[p.IP] = p
		feature := geojson.NewPointFeature([]float64{p.Longitude, p.Latitude})
		feature.SetProperty("ip", p.IP)
		feature.SetProperty("country", p.Country)
		fc.AddFeature(feature)
	}

	for _, flow := range flows {
		src, srcOK := located[flow.SourceIP]
		dst, dstOK := located[flow.DestinationIP]
		if !srcOK || !dstOK {
			continue
		}
		line := geojson.NewLineStringFeature([][]float64{
			{src.Longitude, src.Latitude},
			{dst.Longitude, dst.Latitude},
		})
		line.SetProperty("sourceIp", flow.SourceIP)
		line.SetProperty("destinationIp", flow.DestinationIP)
		line.SetProperty("totalBytes", flow.TotalBytes)
		fc.AddFeature(line)
	}

	return fc
}
