package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Role is the permission level of a user on a board.
// Codes are stable and ordered: lower code means more privileges.
type Role int

const (
	RoleOwner  Role = 1
	RoleWriter Role = 2
	RoleReader Role = 3
)

var roleNames = map[Role]string{
	RoleOwner:  "owner",
	RoleWriter: "writer",
	RoleReader: "reader",
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "role(" + strconv.Itoa(int(r)) + ")"
}

// ParseRole accepts either the integer code ("2") or the name ("writer")
func ParseRole(s string) (Role, error) {
	code, err := parseEnum(s, func(name string) (int, bool) {
		for r, n := range roleNames {
			if n == name {
				return int(r), true
			}
		}
		return 0, false
	})
	if err != nil || !Role(code).Valid() {
		return 0, fmt.Errorf("invalid role %q", s)
	}
	return Role(code), nil
}

// Participant links a user to a board with a role
type Participant struct {
	BaseModel
	BoardID uuid.UUID `gorm:"type:uuid;not null;index:idx_board_participants_board_id;uniqueIndex:uq_board_participants_board_user" json:"board_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_board_participants_user_id;uniqueIndex:uq_board_participants_board_user" json:"user_id"`
	Role    Role      `gorm:"type:smallint;not null;default:1" json:"role"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "board_participants"
}

// parseEnum resolves an enum given as a decimal code or a case-insensitive name
func parseEnum(s string, byName func(string) (int, bool)) (int, error) {
	s = strings.TrimSpace(s)
	if code, err := strconv.Atoi(s); err == nil {
		return code, nil
	}
	if code, ok := byName(strings.ToLower(s)); ok {
		return code, nil
	}
	return 0, fmt.Errorf("unknown value %q", s)
}
