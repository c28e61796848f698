package util

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateTimestampWithPrefix builds a sortable identifier for new records,
// e.g. EVT1700000000000000000-4821. The random suffix keeps ids distinct when
// two records are created within the same clock tick.
func GenerateTimestampWithPrefix(prefix string) string {
	return fmt.Sprintf("%s%d-%04d", prefix, time.Now().UnixNano(), rand.Intn(10000))
}
