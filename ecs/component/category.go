package component

import "github.com/jakecoffman/cp"

// Category is the collision role of an entity's shape. The set is closed;
// every pair of categories has an entry in the collision effect table.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryPlatform
	CategoryParticle
	CategorySpike

	CategoryCount
)

var categoryNames = [CategoryCount]string{
	CategoryNone:     "none",
	CategoryPlayer:   "player",
	CategoryPlatform: "platform",
	CategoryParticle: "particle",
	CategorySpike:    "spike",
}

func (c Category) String() string {
	if c >= CategoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// CollisionType maps the category onto a Chipmunk collision type.
func (c Category) CollisionType() cp.CollisionType {
	return cp.CollisionType(c)
}

func (c Category) Valid() bool {
	return c > CategoryNone && c < CategoryCount
}
