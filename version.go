package lpstake

import "fmt"

// Release version of the pool node. Maj is updated on breaking releases,
// Min on feature releases and Fix on bugfix releases.
const (
	Maj = 0
	Min = 1
	Fix = 0
)

// Suffix used when not a tagged release (eg. -dev, -alpha, -beta, etc)
const Suffix = "-dev"

var version = fmt.Sprintf("v%d.%d.%d%s", Maj, Min, Fix, Suffix)

// GitCommit is set by build flags.
var GitCommit = ""

// Version is the string displayed by the node.
func Version() string {
	v := version
	if GitCommit != "" {
		v += " " + GitCommit
	}
	return v
}
