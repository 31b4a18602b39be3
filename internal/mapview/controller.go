// Package mapview wraps the external map-rendering capability. The renderer
// itself (tile loading, drawing) stays behind the Renderer interface; this
// package owns the semantic-layer mapping, viewport commands, and the
// click-to-saved-location flow.
package mapview

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/nchub/internal/catalog"
	"github.com/example/nchub/internal/store"
	"github.com/example/nchub/pkg/models"
)

// LngLat is a geographic coordinate pair.
type LngLat struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// ViewportOptions configures the renderer once per mount.
type ViewportOptions struct {
	Center  LngLat
	Zoom    float64
	MinZoom float64
	MaxZoom float64
	// Bounds restrict panning: southwest, then northeast corner.
	Bounds [2]LngLat
}

// Renderer is the map-rendering capability the controller drives.
type Renderer interface {
	Initialize(opts ViewportOptions) error
	SetLayerVisibility(renderLayerID string, visible bool)
	FlyTo(center LngLat, zoom float64, duration time.Duration)
	Zoom() float64
}

// layerMappings wires semantic layer ids to render-layer ids. Only peatland
// and woodland carry a rendering effect; the remaining catalog layers toggle
// state with no visible change (present but inert).
var layerMappings = map[string][]string{
	"peatland": {"peatland-fill", "peatland-outline"},
	"woodland": {"woodland-fill"},
}

// RenderLayers returns the render-layer ids wired to a semantic layer id.
// Unwired layers yield an empty slice.
func RenderLayers(layerID string) []string {
	return append([]string{}, layerMappings[layerID]...)
}

// Controller drives one mounted map view.
type Controller struct {
	renderer Renderer
	store    *store.Store
	log      *zap.Logger

	clicked *LngLat
}

// New builds a controller over the renderer and state store.
func New(renderer Renderer, st *store.Store, log *zap.Logger) *Controller {
	return &Controller{renderer: renderer, store: st, log: log}
}

// Initialize mounts the viewport with the UK defaults from the catalog.
func (c *Controller) Initialize() error {
	return c.renderer.Initialize(ViewportOptions{
		Center:  LngLat{Lng: catalog.MapCenterLng, Lat: catalog.MapCenterLat},
		Zoom:    catalog.MapDefaultZoom,
		MinZoom: catalog.MapMinZoom,
		MaxZoom: catalog.MapMaxZoom,
		Bounds: [2]LngLat{
			{Lng: catalog.MapBounds[0][0], Lat: catalog.MapBounds[0][1]},
			{Lng: catalog.MapBounds[1][0], Lat: catalog.MapBounds[1][1]},
		},
	})
}

// ToggleLayer flips the semantic layer in the store and mirrors visibility to
// every wired render layer.
func (c *Controller) ToggleLayer(layerID string) {
	wasActive := c.store.LayerActive(layerID)
	for _, renderLayer := range layerMappings[layerID] {
		c.renderer.SetLayerVisibility(renderLayer, !wasActive)
	}
	c.store.ToggleLayer(layerID)
}

// FlyToRegion animates the viewport to a catalog region preset.
func (c *Controller) FlyToRegion(name string) error {
	region := catalog.UKRegionByName(name)
	if region == nil {
		return fmt.Errorf("unknown region %q", name)
	}
	c.renderer.FlyTo(LngLat{Lng: region.Lng, Lat: region.Lat}, region.Zoom, 2*time.Second)
	return nil
}

// HandleClick records the clicked coordinate, rounded to four decimals.
func (c *Controller) HandleClick(lng, lat float64) {
	c.clicked = &LngLat{Lng: round4(lng), Lat: round4(lat)}
}

// ClickedLocation returns the last rounded click, or nil.
func (c *Controller) ClickedLocation() *LngLat {
	return c.clicked
}

// SaveClickedLocation stores the last clicked point under a user-supplied
// name at the current zoom. It requires a prior click and a non-empty name.
func (c *Controller) SaveClickedLocation(ctx context.Context, name string) (*models.SavedLocation, error) {
	if c.clicked == nil {
		return nil, fmt.Errorf("no location clicked")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("location name is required")
	}
	return c.store.SaveLocation(ctx, models.SavedLocation{
		Name: name,
		Lat:  c.clicked.Lat,
		Lng:  c.clicked.Lng,
		Zoom: c.renderer.Zoom(),
	}), nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
