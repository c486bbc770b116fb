package compass

import (
	"sort"

	"crypto_compass_backend/internal/model"
)

// StrongThreshold separates moderate from strong levels on both axes.
const StrongThreshold = 33.0

// Bucket is the coarse position of a score on an axis.
type Bucket int

const (
	StronglyNegative Bucket = iota
	ModeratelyNegative
	ModeratelyPositive
	StronglyPositive
)

// ClassifyScore buckets an unrounded axis score. Zero belongs to the
// moderately positive side; there is no neutral bucket.
func ClassifyScore(score float64) Bucket {
	switch {
	case score < -StrongThreshold:
		return StronglyNegative
	case score < 0:
		return ModeratelyNegative
	case score < StrongThreshold:
		return ModeratelyPositive
	default:
		return StronglyPositive
	}
}

// Level is a bucket on a given axis. Both the orientation description and
// the archetype are resolved from Levels so the two lookups cannot drift.
type Level struct {
	Dimension model.Dimension
	Bucket    Bucket
}

var levelLabels = map[model.Dimension][4]string{
	model.DimensionCentralization: {"Puternic Centralizat", "Moderat Centralizat", "Moderat Descentralizat", "Puternic Descentralizat"},
	model.DimensionPrivatePublic:  {"Puternic Bun Privat", "Moderat Bun Privat", "Moderat Bun Public", "Puternic Bun Public"},
}

var levelSlugs = map[model.Dimension][4]string{
	model.DimensionCentralization: {"puternic-centralizat", "moderat-centralizat", "moderat-descentralizat", "puternic-descentralizat"},
	model.DimensionPrivatePublic:  {"puternic-privat", "moderat-privat", "moderat-public", "puternic-public"},
}

func (b Bucket) valid() bool {
	return b >= StronglyNegative && b <= StronglyPositive
}

func ClassifyAxis(dim model.Dimension, score float64) Level {
	return Level{Dimension: dim, Bucket: ClassifyScore(score)}
}

// Label is the human readable name, e.g. "Moderat Bun Public".
func (l Level) Label() string {
	if !l.Bucket.valid() {
		return ""
	}
	return levelLabels[l.Dimension][l.Bucket]
}

// Slug is the archetype key fragment, e.g. "moderat-public".
func (l Level) Slug() string {
	if !l.Bucket.valid() {
		return ""
	}
	return levelSlugs[l.Dimension][l.Bucket]
}

// Orientation joins both level labels, e.g.
// "Moderat Descentralizat-Moderat Bun Public".
func Orientation(central, privatePublic Level) string {
	return central.Label() + "-" + privatePublic.Label()
}

func ArchetypeKey(central, privatePublic Level) string {
	return central.Slug() + "-" + privatePublic.Slug()
}

const UnknownOrientation = "Orientare necunoscută"

// Describe returns the long description of an orientation label.
func Describe(orientation string) string {
	if d, ok := orientationDescriptions[orientation]; ok {
		return d
	}
	return UnknownOrientation
}

// KnownOrientation reports whether orientation is one of the 16 labels.
func KnownOrientation(orientation string) bool {
	_, ok := orientationDescriptions[orientation]
	return ok
}

var unknownArchetype = model.Archetype{
	ID:         "unknown-orientation",
	Name:       "Orientare Necunoscută",
	Color:      "from-gray-500 to-gray-600",
	Tagline:    "Profil unic",
	Philosophy: "O combinație unică de preferințe în ecosistemul crypto.",
}

// UnknownArchetype is returned when a key has no catalog entry.
func UnknownArchetype() model.Archetype { return unknownArchetype }

// ArchetypeFromScores classifies both unrounded scores and resolves the
// archetype. It falls back to UnknownArchetype, which the bucket rule
// makes unreachable for finite scores.
func ArchetypeFromScores(centralization, privatePublic float64) model.Archetype {
	return ArchetypeFor(
		ClassifyAxis(model.DimensionCentralization, centralization),
		ClassifyAxis(model.DimensionPrivatePublic, privatePublic),
	)
}

func ArchetypeFor(central, privatePublic Level) model.Archetype {
	if a, ok := archetypes[ArchetypeKey(central, privatePublic)]; ok {
		return a
	}
	return unknownArchetype
}

func ArchetypeByID(id string) (model.Archetype, bool) {
	a, ok := archetypes[id]
	return a, ok
}

// Archetypes lists the catalog from strongly centralized/private to
// strongly decentralized/public.
func Archetypes() []model.Archetype {
	out := make([]model.Archetype, 0, len(archetypes))
	for _, a := range archetypes {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return archetypeRank(out[i].ID) < archetypeRank(out[j].ID)
	})
	return out
}

func archetypeRank(id string) int {
	for c := StronglyNegative; c <= StronglyPositive; c++ {
		for p := StronglyNegative; p <= StronglyPositive; p++ {
			key := ArchetypeKey(Level{model.DimensionCentralization, c}, Level{model.DimensionPrivatePublic, p})
			if key == id {
				return int(c)*4 + int(p)
			}
		}
	}
	return 1 << 10
}
