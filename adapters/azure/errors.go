package azure

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/zonops/zonops/domain/model"
)

// isNotFoundError checks if an error is a 404 Not Found error.
func isNotFoundError(err error) bool {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusNotFound
	}
	return false
}

// isPreconditionError checks if an error is an optimistic-concurrency
// precondition failure (412).
func isPreconditionError(err error) bool {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusPreconditionFailed
	}
	return false
}

// mapWriteError translates a record set write failure onto the domain error
// taxonomy: 412 becomes *model.ConflictError, everything else is wrapped
// as-is for the caller to treat as fatal for that record set.
func mapWriteError(err error, name string, rtype model.RecordType) error {
	if err == nil {
		return nil
	}
	if isPreconditionError(err) {
		return &model.ConflictError{Name: name, Type: rtype, Err: err}
	}
	return fmt.Errorf("write record set %s/%s: %w", name, rtype, err)
}
