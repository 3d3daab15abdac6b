package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleEmployee.Valid())
	assert.False(t, Role("manager").Valid())
	assert.False(t, Role("").Valid())
}

// MySQL compares strings case-insensitively under the default collation;
// the email column must carry a binary collation so lookups and the
// unique index match exactly as stored.
func TestUser_EmailColumnIsCaseSensitive(t *testing.T) {
	field, ok := reflect.TypeOf(User{}).FieldByName("Email")
	assert.True(t, ok)
	assert.True(t, strings.Contains(field.Tag.Get("gorm"), "COLLATE utf8mb4_bin"))
}
