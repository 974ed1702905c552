package entity

import (
	"fmt"
	"strings"
)

type AssigneeRefKind string

const (
	AssigneeWorkerCode AssigneeRefKind = "worker"
	AssigneeUserID     AssigneeRefKind = "user"
)

// AssigneeRef is the tagged union behind a report's assignee column: either a
// roster employee code or a user id, always carried with its tag so the two
// identifier spaces never mix.
type AssigneeRef struct {
	Kind  AssigneeRefKind `json:"kind"`
	Value string          `json:"value"`
}

func NewWorkerRef(employeeCode string) AssigneeRef {
	return AssigneeRef{Kind: AssigneeWorkerCode, Value: employeeCode}
}

func NewUserRef(userID string) AssigneeRef {
	return AssigneeRef{Kind: AssigneeUserID, Value: userID}
}

// ParseAssigneeRef parses the stored/wire form "worker:<code>" or "user:<id>".
func ParseAssigneeRef(raw string) (AssigneeRef, error) {
	kind, value, found := strings.Cut(raw, ":")
	if !found || value == "" {
		return AssigneeRef{}, fmt.Errorf("malformed assignee ref %q", raw)
	}
	switch AssigneeRefKind(kind) {
	case AssigneeWorkerCode:
		return NewWorkerRef(value), nil
	case AssigneeUserID:
		return NewUserRef(value), nil
	}
	return AssigneeRef{}, fmt.Errorf("unknown assignee ref kind %q", kind)
}

func (r AssigneeRef) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.Value)
}

func (r AssigneeRef) IsZero() bool {
	return r.Value == ""
}
