package list

import "github.com/pkg/errors"

// ErrDestroyed is returned when a destroyed Node, or a Node belonging to a
// destroyed List, is used for a structural operation.
var ErrDestroyed = errors.New("list: use of destroyed handle")

// ErrDetachedTarget is returned by Before and After when the target Node is
// not linked into any list.
var ErrDetachedTarget = errors.New("list: target is not linked")

// ErrSelfInsert is returned when a Node is placed before or after itself.
var ErrSelfInsert = errors.New("list: node placed relative to itself")

// ErrInconsistent is wrapped by every failure reported from Validate.
var ErrInconsistent = errors.New("list: consistency violation")
