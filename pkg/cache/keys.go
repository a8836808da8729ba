package cache

// ArtifactParams identifies a rendered artifact for caching purposes.
// Every field that changes the output bytes must be included, otherwise
// a stale artifact could be served for a changed input.
type ArtifactParams struct {
	// ImageHash is the SHA-256 of the source image bytes.
	ImageHash string `json:"image_hash"`

	// SizeKey is the catalog key of the button size ("1.25", "2.25").
	SizeKey string `json:"size_key"`

	// Placement parameters in image space.
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`

	// Paper dimensions and margins, in inches.
	PaperWidth   float64 `json:"paper_width"`
	PaperHeight  float64 `json:"paper_height"`
	MarginTop    float64 `json:"margin_top"`
	MarginRight  float64 `json:"margin_right"`
	MarginBottom float64 `json:"margin_bottom"`
	MarginLeft   float64 `json:"margin_left"`

	// ScaleFactor is the printer calibration factor applied to the layout.
	ScaleFactor float64 `json:"scale_factor"`

	// Render options.
	Format     string  `json:"format"`
	NoGuides   bool    `json:"no_guides"`
	NoImage    bool    `json:"no_image"`
	Background string  `json:"background"`
	PNGScale   float64 `json:"png_scale"`
}

// Keyer generates cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey generates a key for a rendered output file.
	ArtifactKey(p ArtifactParams) string
}

// DefaultKeyer is the standard key generation strategy.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey generates a key like: artifact:hash(params)
func (k DefaultKeyer) ArtifactKey(p ArtifactParams) string {
	return hashKey("artifact", p)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = DefaultKeyer{}
