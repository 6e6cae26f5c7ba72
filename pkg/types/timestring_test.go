package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid morning", input: "08:30", want: "08:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "8:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "abcde", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "with seconds", input: "08:30:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	start, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)

	shifted, err := start.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "10:45", shifted.String())

	// 24:00 представимо как конец интервала
	end, err := NewTimeStringFromString("23:30")
	require.NoError(t, err)
	midnight, err := end.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, 24*60, midnight.Minutes())

	// За полночь уходить нельзя
	_, err = end.AddMinutes(31)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Ordering(t *testing.T) {
	early, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	late, err := NewTimeStringFromString("17:30")
	require.NoError(t, err)

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.True(t, early.Equal(early))
	assert.False(t, early.Equal(late))
}

func TestTimeString_JSON(t *testing.T) {
	ts, err := NewTimeStringFromString("14:05")
	require.NoError(t, err)

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"14:05"`, string(data))

	var parsed TimeString
	require.NoError(t, json.Unmarshal([]byte(`"07:45"`), &parsed))
	assert.Equal(t, "07:45", parsed.String())

	assert.Error(t, json.Unmarshal([]byte(`"7:45"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &parsed))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// TIME колонка как time.Time
	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 11, 30, 0, 0, time.UTC)))
	assert.Equal(t, "11:30", ts.String())

	// TIME колонка как строка с секундами
	require.NoError(t, ts.Scan("09:15:00"))
	assert.Equal(t, "09:15", ts.String())

	// []byte вариант драйвера
	require.NoError(t, ts.Scan([]byte("16:45:00")))
	assert.Equal(t, "16:45", ts.String())

	assert.Error(t, ts.Scan(12345))
}

func TestTimeString_Value(t *testing.T) {
	ts, err := NewTimeStringFromString("08:00")
	require.NoError(t, err)

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", v)
}
