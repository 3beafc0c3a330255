package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDAcceptsNumbersAndStrings(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":42,"b":"65f0c2","c":null}`), &v))
	assert.Equal(t, ID("42"), v.A)
	assert.Equal(t, ID("65f0c2"), v.B)
	assert.Equal(t, ID(""), v.C)

	var bad ID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &bad))
}

func TestTimestampLayouts(t *testing.T) {
	for _, raw := range []string{
		`"2024-03-01T09:30:00Z"`,
		`"2024-03-01T09:30:00.123456"`,
		`"2024-03-01 09:30:00"`,
		`"2024-03-01"`,
	} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(raw), &ts), raw)
		assert.Equal(t, time.March, ts.Month(), raw)
		assert.Equal(t, 1, ts.Day(), raw)
	}

	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))

	out, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestMergeServerWinsPerField(t *testing.T) {
	local := FieldErrors{
		"employee_id": {"Employee ID must be alphanumeric"},
		"full_name":   {"Full name is required"},
	}
	server := FieldErrors{"employee_id": {"Employee ID already exists"}, "email": {"taken"}}

	merged := Merge(local, server)
	assert.Equal(t, []string{"Employee ID already exists"}, merged["employee_id"])
	assert.Equal(t, "Full name is required", merged.First("full_name"))
	assert.Equal(t, "taken", merged.First("email"))
	assert.Equal(t, []string{"email", "employee_id", "full_name"}, merged.Fields())

	merged.Set("full_name", "changed")
	assert.Equal(t, "Full name is required", local.First("full_name"), "merge must not alias its inputs")
}

func TestFieldErrorsHelpers(t *testing.T) {
	f := FieldErrors{}
	assert.True(t, f.Empty())
	assert.Equal(t, "", f.First("email"))

	f.Set("email", "Invalid email format")
	assert.True(t, f.Has("email"))
	f.Clear("email")
	assert.True(t, f.Empty())
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(3, 0))
	assert.Equal(t, 60, Percent(6, 10))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 13, Percent(1, 8), "12.5 rounds half up")
}

func TestEmployeeInitial(t *testing.T) {
	assert.Equal(t, "É", Employee{FullName: "Élodie"}.Initial())
	assert.Equal(t, "?", Employee{}.Initial())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPresent.Valid())
	assert.True(t, StatusAbsent.Valid())
	assert.False(t, Status("Late").Valid())
}
