package catalog

// MapLayer is one togglable overlay declared for the map explorer. Only the
// layers listed in mapview's render mappings have a wired rendering effect;
// the rest toggle UI state only.
type MapLayer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

var MapLayers = []MapLayer{
	{ID: "peatland", Name: "Peatland", Color: "#8B4513", Description: "Deep peat soils (>40cm). Priority for restoration due to carbon storage potential.", Category: "habitats"},
	{ID: "woodland", Name: "Woodland", Color: "#228B22", Description: "Existing woodland cover including ancient woodland sites.", Category: "habitats"},
	{ID: "wetland", Name: "Wetland & Water", Color: "#4682B4", Description: "Freshwater habitats including rivers, lakes, fens, and marshes.", Category: "habitats"},
	{ID: "sssi", Name: "SSSI", Color: "#FF6B6B", Description: "Sites of Special Scientific Interest - legally protected areas.", Category: "designations"},
	{ID: "flood-risk", Name: "Flood Risk Zones", Color: "#1E90FF", Description: "Environment Agency flood risk zones - opportunities for natural flood management.", Category: "opportunities"},
	{ID: "restoration-potential", Name: "Restoration Potential", Color: "#32CD32", Description: "Areas with high potential for woodland creation or peatland restoration.", Category: "opportunities"},
}

// UKRegion is a fly-to preset for the map explorer.
type UKRegion struct {
	Name        string  `json:"name"`
	Lng         float64 `json:"lng"`
	Lat         float64 `json:"lat"`
	Zoom        float64 `json:"zoom"`
	Description string  `json:"description"`
}

var UKRegions = []UKRegion{
	{Name: "Scottish Highlands", Lng: -4.5, Lat: 57.0, Zoom: 7, Description: "Major peatland and native woodland restoration opportunities"},
	{Name: "Yorkshire", Lng: -1.5, Lat: 54.0, Zoom: 8, Description: "Water company catchment work, upland restoration"},
	{Name: "Southwest England", Lng: -3.5, Lat: 50.8, Zoom: 8, Description: "Cotswolds woodland creation, wetland restoration"},
	{Name: "Wales", Lng: -3.8, Lat: 52.4, Zoom: 7, Description: "Upland restoration, native woodland expansion"},
	{Name: "East Anglia", Lng: 1.0, Lat: 52.5, Zoom: 8, Description: "Fenland restoration, agricultural transitions"},
}

// UKRegionByName returns the region with the given name, or nil.
func UKRegionByName(name string) *UKRegion {
	for i := range UKRegions {
		if UKRegions[i].Name == name {
			return &UKRegions[i]
		}
	}
	return nil
}

// Map viewport defaults, restricted to the UK.
const (
	MapCenterLng   = -2.5
	MapCenterLat   = 54.5
	MapDefaultZoom = 5.5
	MapMinZoom     = 4
	MapMaxZoom     = 16
)

// Pan bounds: southwest then northeast corner.
var MapBounds = [2][2]float64{{-12, 49}, {4, 61}}
