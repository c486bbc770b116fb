package compass

// DefaultCompassSize is the side of the square compass chart in SVG units.
const DefaultCompassSize = 400.0

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CompassPosition converts raw scores to chart coordinates. Decentralized
// lies right, public good lies up (SVG y grows downwards).
func CompassPosition(centralization, privatePublic, size float64) Position {
	return Position{
		X: (centralization + 100) / 200 * size,
		Y: (100 - privatePublic) / 200 * size,
	}
}

type Quadrant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var (
	quadrantTopLeft = Quadrant{
		ID: "topLeft", Name: "Centralizat - Bun Public", Color: "#1e3a8a",
		Description: "Sisteme centralizate pentru binele comun",
	}
	quadrantTopRight = Quadrant{
		ID: "topRight", Name: "Descentralizat - Bun Public", Color: "#6366f1",
		Description: "Sisteme descentralizate pentru binele comun",
	}
	quadrantBottomLeft = Quadrant{
		ID: "bottomLeft", Name: "Centralizat - Bun Privat", Color: "#475569",
		Description: "Sisteme centralizate pentru profit privat",
	}
	quadrantBottomRight = Quadrant{
		ID: "bottomRight", Name: "Descentralizat - Bun Privat", Color: "#7c3aed",
		Description: "Sisteme descentralizate pentru profit privat",
	}
)

// QuadrantFor places a point in one of the four chart quadrants. A score of
// 0 belongs to the positive side, as in ClassifyAxis, so the quadrant always
// agrees with the archetype.
func QuadrantFor(centralization, privatePublic float64) Quadrant {
	decentralized := centralization >= 0
	public := privatePublic >= 0
	switch {
	case !decentralized && public:
		return quadrantTopLeft
	case decentralized && public:
		return quadrantTopRight
	case !decentralized && !public:
		return quadrantBottomLeft
	default:
		return quadrantBottomRight
	}
}

// comparisonQuadrant is the coarser placement used when comparing two
// results: only strictly signed points get their own quadrant, anything on
// an axis counts as bottomRight.
func comparisonQuadrant(centralization, privatePublic float64) string {
	switch {
	case centralization < 0 && privatePublic > 0:
		return quadrantTopLeft.ID
	case centralization > 0 && privatePublic > 0:
		return quadrantTopRight.ID
	case centralization < 0 && privatePublic < 0:
		return quadrantBottomLeft.ID
	default:
		return quadrantBottomRight.ID
	}
}
