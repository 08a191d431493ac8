package utc_test

import (
	"math"
	"time"

	"github.com/athre0z/utc"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bridge", func() {
	Describe("Time", func() {
		It("should convert the epoch to 1970-01-01 00:00:00 UTC", func() {
			Expect(utc.Zero.Time()).To(Equal(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
		})
		It("should convert one second past the epoch", func() {
			Expect(utc.FromMillis(1000).Time()).To(Equal(time.Date(1970, 1, 1, 0, 0, 1, 0, time.UTC)))
		})
		It("should always return UTC", func() {
			Expect(utc.FromMillis(1700000000000).Time().Location()).To(Equal(time.UTC))
		})
	})

	Describe("FromTime", func() {
		It("should convert a calendar instant to its millisecond count", func() {
			ts, err := utc.FromTime(time.Date(2019, 3, 13, 16, 14, 9, 0, time.UTC))
			Expect(err).ToNot(HaveOccurred())
			Expect(ts.Millis()).To(Equal(int64(1552493649000)))
		})
		It("should ignore the calendar offset", func() {
			zone := time.FixedZone("UTC+2", 2*60*60)
			ts, err := utc.FromTime(time.Date(2019, 3, 13, 18, 14, 9, 0, zone))
			Expect(err).ToNot(HaveOccurred())
			Expect(ts.Millis()).To(Equal(int64(1552493649000)))
		})
		It("should floor sub-millisecond precision", func() {
			ts, err := utc.FromTime(time.Date(2020, 1, 1, 0, 0, 0, 1_500_000, time.UTC))
			Expect(err).ToNot(HaveOccurred())
			Expect(ts.Millis()).To(Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli() + 1))
		})
		It("should floor pre-epoch instants toward negative infinity", func() {
			ts, err := utc.FromTime(time.Date(1969, 12, 31, 23, 59, 59, 999_500_000, time.UTC))
			Expect(err).ToNot(HaveOccurred())
			Expect(ts.Millis()).To(Equal(int64(-1)))
		})
		It("should reject instants outside the representable range", func() {
			_, err := utc.FromTime(time.Unix(math.MaxInt64/1000+1, 0))
			Expect(err).To(MatchError(utc.ErrRange))
			_, err = utc.FromTime(time.Unix(math.MinInt64/1000-1, 0))
			Expect(err).To(MatchError(utc.ErrRange))
		})
		It("should accept the exact range boundaries", func() {
			ts, err := utc.FromTime(time.UnixMilli(math.MinInt64))
			Expect(err).ToNot(HaveOccurred())
			Expect(ts).To(Equal(utc.TimeStampMin))
			ts, err = utc.FromTime(time.UnixMilli(math.MaxInt64))
			Expect(err).ToNot(HaveOccurred())
			Expect(ts).To(Equal(utc.TimeStampMax))
		})
		It("should floor instants within the final millisecond to the maximum", func() {
			ts, err := utc.FromTime(time.UnixMilli(math.MaxInt64).Add(500 * time.Microsecond))
			Expect(err).ToNot(HaveOccurred())
			Expect(ts).To(Equal(utc.TimeStampMax))
			_, err = utc.FromTime(time.UnixMilli(math.MaxInt64).Add(time.Millisecond))
			Expect(err).To(MatchError(utc.ErrRange))
			_, err = utc.FromTime(time.UnixMilli(math.MinInt64).Add(-time.Nanosecond))
			Expect(err).To(MatchError(utc.ErrRange))
		})
	})

	Describe("FromTimeExact", func() {
		It("should accept instants with whole millisecond precision", func() {
			ts, err := utc.FromTimeExact(time.Date(2020, 1, 1, 0, 0, 0, 250_000_000, time.UTC))
			Expect(err).ToNot(HaveOccurred())
			Expect(ts.Millis() % 1000).To(Equal(int64(250)))
		})
		It("should reject instants that would lose precision", func() {
			_, err := utc.FromTimeExact(time.Date(2020, 1, 1, 0, 0, 0, 1_500_000, time.UTC))
			Expect(err).To(MatchError(utc.ErrPrecision))
		})
	})

	Describe("Round trips", func() {
		It("should reproduce the timestamp exactly through the calendar", func() {
			for _, n := range []int64{
				0, 1, -1, 1552493649123, -62135596800000,
				math.MinInt64, math.MinInt64 + 807, math.MaxInt64,
			} {
				ts := utc.FromMillis(n)
				back, err := utc.FromTime(ts.Time())
				Expect(err).ToNot(HaveOccurred())
				Expect(back).To(Equal(ts))
			}
		})
		It("should reproduce the calendar instant when no precision was lost", func() {
			c := time.Date(2019, 4, 14, 12, 30, 0, 0, time.UTC)
			ts, err := utc.FromTime(c)
			Expect(err).ToNot(HaveOccurred())
			Expect(ts.Time()).To(Equal(c))
		})
	})

	Describe("Durations", func() {
		It("should round trip spans through time.Duration", func() {
			Expect(utc.FromDuration((90 * utc.Second).Duration())).To(Equal(90 * utc.Second))
		})
		It("should truncate sub-millisecond durations toward zero", func() {
			Expect(utc.FromDuration(1500 * time.Microsecond)).To(Equal(utc.Millisecond))
			Expect(utc.FromDuration(-1500 * time.Microsecond)).To(Equal(-utc.Millisecond))
		})
	})
})

var _ = Describe("Now", func() {
	AfterEach(func() { utc.NowFunc = time.Now })

	It("should read the injected clock", func() {
		fixed := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
		utc.NowFunc = func() time.Time { return fixed }
		Expect(utc.Now()).To(Equal(utc.FromMillis(1700000000000)))
	})
	It("should floor the clock reading to milliseconds", func() {
		fixed := time.Date(2023, 11, 14, 22, 13, 20, 999_999, time.UTC)
		utc.NowFunc = func() time.Time { return fixed }
		Expect(utc.Now()).To(Equal(utc.FromMillis(1700000000000)))
	})
})
