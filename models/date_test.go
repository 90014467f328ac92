package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15"`), &d))
	assert.Equal(t, NewDate(2024, time.January, 15), d)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15"`, string(out))
}

func TestDate_Unmarshal_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15.01.2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`15`), &d))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
	}{
		{name: "time", src: time.Date(2024, time.January, 15, 13, 45, 0, 0, time.UTC)},
		{name: "string", src: "2024-01-15"},
		{name: "sqlite timestamp text", src: "2024-01-15 00:00:00+00:00"},
		{name: "bytes", src: []byte("2024-01-15")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, "2024-01-15", d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(12))
}
