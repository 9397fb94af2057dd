package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestampMarshalMillisecondForm(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, time.May, 10, 13, 45, 30, 0, time.UTC))
	out, err := json.Marshal(ts)
	require.NoError(t, err)
	require.Equal(t, `"2024-05-10T13:45:30.000Z"`, string(out))
}

func TestTimestampMarshalConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	ts := NewTimestamp(time.Date(2024, time.May, 10, 21, 0, 0, 0, loc))
	out, err := json.Marshal(ts)
	require.NoError(t, err)
	require.Equal(t, `"2024-05-11T00:00:00.000Z"`, string(out))
}

func TestTimestampUnmarshal(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-10T13:45:30.500Z"`), &ts))
	require.Equal(t, 500*int(time.Millisecond), ts.Nanosecond())

	require.NoError(t, json.Unmarshal([]byte(`"2024-05-10T13:45:30Z"`), &ts))
	require.Equal(t, 30, ts.Second())

	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	require.True(t, ts.IsZero())

	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}
