package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeSlotService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.TimeString
		wantErr bool
	}{
		{name: "hours and minutes", input: "10:30", want: "10:30"},
		{name: "with seconds", input: "17:30:00", want: "17:30"},
		{name: "single digit hour", input: "9:00", want: "09:00"},
		{name: "surrounding spaces", input: " 12:00 ", want: "12:00"},
		{name: "garbage", input: "ten thirty", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:61", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	start := types.TimeString("10:00")

	minutes, err := start.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 600, minutes)

	next, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), next)

	assert.True(t, start.IsBefore(next))
	assert.True(t, next.IsAfter(start))
	assert.False(t, start.IsBefore(start))

	_, err = types.TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, types.ErrTimeOutOfRange)
}

func TestTimeString_Scan(t *testing.T) {
	var ts types.TimeString

	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, types.TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("10:30:00")))
	assert.Equal(t, types.TimeString("10:30"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC)))
	assert.Equal(t, types.TimeString("11:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := types.TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = types.TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
