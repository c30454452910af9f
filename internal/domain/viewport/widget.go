package viewport

// WidgetConfig is passed to the map widget at construction so clients never
// mutate shared library state to fix marker icons.
type WidgetConfig struct {
	TileURL       string  `json:"tile_url"`
	Attribution   string  `json:"attribution"`
	TileOpacity   float64 `json:"tile_opacity"`
	IconURL       string  `json:"icon_url"`
	IconRetinaURL string  `json:"icon_retina_url"`
	IconShadowURL string  `json:"icon_shadow_url"`
}

// DefaultWidgetConfig mirrors the OpenStreetMap tile layer and CDN-hosted
// marker icons the product shipped with.
func DefaultWidgetConfig() WidgetConfig {
	return WidgetConfig{
		TileURL:       "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution:   "© OpenStreetMap contributors",
		TileOpacity:   0.8,
		IconURL:       "https://cdnjs.cloudflare.com/ajax/libs/leaflet/1.7.1/images/marker-icon.png",
		IconRetinaURL: "https://cdnjs.cloudflare.com/ajax/libs/leaflet/1.7.1/images/marker-icon-2x.png",
		IconShadowURL: "https://cdnjs.cloudflare.com/ajax/libs/leaflet/1.7.1/images/marker-shadow.png",
	}
}
