// ABOUTME: Timezone service owns zone specifier resolution and instant conversion
// ABOUTME: Provides business logic independent of the timezone database backend

package timezone

import (
	"github.com/mrdear/time-convert/core/interfaces"
)

// ZoneService resolves textual zone specifiers and converts between civil
// date components and absolute instants. It is stateless and safe for
// concurrent use.
type ZoneService struct {
	deps interfaces.Dependencies
}

// NewZoneService creates a new timezone service instance
func NewZoneService(deps interfaces.Dependencies) *ZoneService {
	return &ZoneService{deps: deps}
}
