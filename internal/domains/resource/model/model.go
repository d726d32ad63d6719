package model

import (
	"coworking/shared/validator"
	"strings"
)

const (
	EntityName = "resource"
)

// Type is the category of a bookable resource.
type Type string

const (
	TypeWorkspace      Type = "WORKSPACE"
	TypeConferenceRoom Type = "CONFERENCE_ROOM"
)

var displayNames = map[Type]string{
	TypeWorkspace:      "Workspace",
	TypeConferenceRoom: "Conference room",
}

func init() {
	validator.RegisterResourceTypes(string(TypeWorkspace), string(TypeConferenceRoom))
}

func (t Type) Valid() bool {
	_, ok := displayNames[t]

	return ok
}

// DisplayName is the human readable label shown in listings.
func (t Type) DisplayName() string {
	if name, ok := displayNames[t]; ok {
		return name
	}

	return string(t)
}

// ParseType accepts the enum value or the console shortcuts W and C, case-insensitively.
func ParseType(value string) (Type, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(TypeWorkspace), "W":
		return TypeWorkspace, true
	case string(TypeConferenceRoom), "C":
		return TypeConferenceRoom, true
	default:
		return "", false
	}
}

type Resource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type Type   `json:"type"`
}
