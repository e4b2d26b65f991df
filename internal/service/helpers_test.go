package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/config"
)

// t0 is a millisecond-aligned base time, values survive the store round trip.
var t0 = time.UnixMilli(1_760_000_000_000)

func testTimings() config.SyncTimings {
	return config.DefaultSyncTimings()
}

func fakeClock() *clock.Fake {
	return clock.NewFake(t0)
}

// infoPayload renders a get_info payload in mmol/l with a Flat trend.
func infoPayload(val string, bgTime, statusNow time.Time) string {
	return fmt.Sprintf(
		`{"bg":{"val":%q,"trend":"Flat","isHigh":false,"isLow":false,"time":%d},"status":{"now":%d,"isMgdl":false}}`,
		val, bgTime.UnixMilli(), statusNow.UnixMilli(),
	)
}
