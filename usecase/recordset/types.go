// Package recordset implements record-set level use cases: listing, show,
// delete, and value-level add-record/remove-record built on the same write
// preconditions the importer uses.
package recordset

import "github.com/zonops/zonops/domain/model"

// Ports holds the domain ports required for record set operations.
type Ports struct {
	Records model.RecordSetPort
}

// UseCase wires dependencies for record set operations.
type UseCase struct {
	Ports *Ports
}
