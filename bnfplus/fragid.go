package bnfplus

import "github.com/fiskmans/patternmatcher/internal/id"

// fragID keys the bootstrap grammar's own Catalogue: one distinct,
// comparable identifier per fragment the grammar builds.
type fragID = id.ID

var (
	Document = id.Next()
	Space    = id.Next()

	Key     = id.Next()
	KeyChar = id.Next()

	Declaration = id.Next()
	Value       = id.Next()
	ValuePart   = id.Next()

	OptionalMultiplier = id.Next()
	Multiplier         = id.Next()
	MultiplierPlus     = id.Next()
	MultiplierStar     = id.Next()
	MultiplierQuestion = id.Next()

	Comment   = id.Next()
	EmptyLine = id.Next()
	Line      = id.Next()
)
