package forcelayout

import (
	"errors"
	"fmt"
)

var (
	ErrMissingNode   = errors.New("edge references unknown node")
	ErrInvalidConfig = errors.New("invalid layout config")
)

const (
	EndpointSource = "source"
	EndpointTarget = "target"
)

// MissingNodeError reports an edge whose endpoint key is not in the node
// index. A step that returns it has not moved any node.
type MissingNodeError struct {
	Key      string
	Endpoint string
	Edge     int
}

func (e *MissingNodeError) Error() string {
	return fmt.Sprintf("cannot find %s node %q of edge %d", e.Endpoint, e.Key, e.Edge)
}

func (e *MissingNodeError) Unwrap() error {
	return ErrMissingNode
}
