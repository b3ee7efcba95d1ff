package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/luftdata/go-nilu/pkg/nilu"
)

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, NotAvailable, formatTimestamp(nil))
	assert.Equal(t, NotAvailable, formatTimestamp(&nilu.Timestamp{}))

	ts := &nilu.Timestamp{Time: time.Date(2021, 5, 1, 13, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2021-05-01T13:00:00", formatTimestamp(ts))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, NotAvailable, formatValue(nil))

	value := 42.527
	assert.Equal(t, "42.53", formatValue(&value))
}
