// Package zone implements the zone-level use cases: import and export of
// zone files plus zone CRUD against the domain ports.
package zone

import (
	"time"

	"github.com/zonops/zonops/domain/model"
)

// Ports holds the domain ports required for zone operations.
type Ports struct {
	Zones   model.ZonePort
	Records model.RecordSetPort
}

// UseCase wires dependencies for zone operations.
type UseCase struct {
	Ports *Ports

	// now is overridable in tests; zero value means time.Now.
	now func() time.Time
}

func (u *UseCase) timeNow() time.Time {
	if u.now != nil {
		return u.now()
	}
	return time.Now()
}

// Import result actions.
const (
	ActionCreated  = "created"
	ActionMerged   = "merged"
	ActionReplaced = "replaced"
	ActionPlanned  = "planned"
	ActionFailed   = "failed"
)
