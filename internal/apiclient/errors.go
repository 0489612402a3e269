package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// 単品取得で対象が無いときに errors.Is で判定するためのsentinel。
var ErrNotFound = errors.New("not found")

// APIError はAPIが成功以外のステータスを返したときのエラー。
// どのリソースのどの操作かを必ず持たせて、文言のブレを作らない。
type APIError struct {
	Resource  string
	Operation string
	Status    int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error: %s: status %d", e.Resource, e.Operation, e.Status)
}

// 404はどの操作でも ErrNotFound として判定できるようにする。
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

func newAPIError(resource, operation string, status int) error {
	return &APIError{
		Resource:  resource,
		Operation: operation,
		Status:    status,
	}
}

func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	ok := errors.As(err, &ae)
	return ae, ok
}
