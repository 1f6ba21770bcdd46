/*
 * timing.go, part of gogauss.
 *
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosdotutadotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package normalize

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	gauss "github.com/rmera/gogauss"
)

// TimingKeys are the fields holding one duration per stage of the run.
var TimingKeys = []string{"metadata/cpu_time", "metadata/wall_time"}

// Timings replaces each of the TimingKeys by the sum of its durations,
// formatted as in "1:02:03.5" or "12.25", without leading zero hours and
// minutes nor trailing zeros.
func Timings(rec gauss.Record) {
	for _, key := range TimingKeys {
		v, ok := rec.Get(key)
		if !ok {
			continue
		}
		total, err := sumDurations(v)
		if err != nil {
			slog.Warn("could not add up timings", "key", key, "error", err)
			continue
		}
		rec.Set(key, gauss.String(formatTiming(total)))
	}
}

func sumDurations(v gauss.Value) (time.Duration, error) {
	if !v.Kind().IsSequence() {
		return parseDuration(v)
	}
	var total time.Duration
	for i := 0; i < v.Len(); i++ {
		item, _ := v.Index(i)
		d, err := parseDuration(item)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// parseDuration accepts numbers of seconds, Go duration strings and
// timedelta-like strings ("2 days, 1:02:03.500000").
func parseDuration(v gauss.Value) (time.Duration, error) {
	if secs, ok := v.AsReal(); ok {
		return time.Duration(math.Round(secs * float64(time.Second))), nil
	}
	s, ok := v.AsString()
	if !ok {
		return 0, fmt.Errorf("can't read a duration from a %s", v.Kind())
	}
	s = strings.TrimSpace(s)
	var days int
	if before, after, found := strings.Cut(s, ","); found {
		f := strings.Fields(before)
		if len(f) != 2 || !strings.HasPrefix(f[1], "day") {
			return 0, fmt.Errorf("can't read duration %q", s)
		}
		var err error
		if days, err = strconv.Atoi(f[0]); err != nil {
			return 0, fmt.Errorf("can't read duration %q: %w", s, err)
		}
		s = strings.TrimSpace(after)
	}
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("can't read duration %q: %w", s, err)
		}
		return d + time.Duration(days)*24*time.Hour, nil
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	sec, err3 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, fmt.Errorf("can't read duration %q", s)
	}
	d := time.Duration(days)*24*time.Hour + time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
	return d + time.Duration(math.Round(sec*1e6))*time.Microsecond, nil
}

// formatTiming writes d as "[N day[s], ]H:MM:SS[.ffffff]" and then removes
// the leading zeros and colons and, if there is a fraction, the trailing
// zeros.
func formatTiming(d time.Duration) string {
	d = d.Round(time.Microsecond)
	neg := d < 0
	if neg {
		d = -d
	}
	days := int64(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	h := int64(d / time.Hour)
	d -= time.Duration(h) * time.Hour
	m := int64(d / time.Minute)
	d -= time.Duration(m) * time.Minute
	s := int64(d / time.Second)
	us := int64((d - time.Duration(s)*time.Second) / time.Microsecond)
	var b strings.Builder
	if days > 0 {
		plural := "s"
		if days == 1 {
			plural = ""
		}
		fmt.Fprintf(&b, "%d day%s, ", days, plural)
	}
	fmt.Fprintf(&b, "%d:%02d:%02d", h, m, s)
	if us != 0 {
		fmt.Fprintf(&b, ".%06d", us)
	}
	ret := strings.TrimLeft(b.String(), "0:")
	if strings.Contains(ret, ".") {
		ret = strings.TrimRight(ret, "0")
	}
	if neg {
		ret = "-" + ret
	}
	return ret
}
