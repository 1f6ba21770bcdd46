/*
 * normalize.go, part of gogauss.
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

//Package normalize turns the nested mapping produced by an external log
//reader (cclib-like, usually dumped as JSON) into a flat gauss.Record, and
//derives from it the quantities most often needed downstream: total
//timings, frontier-orbital energies and multipole moments.
package normalize

import (
	"log/slog"
	"sort"

	gauss "github.com/rmera/gogauss"
)

// Normalize flattens data and adds the derived fields. Mappings nested one
// level are flattened to "parent/child" keys. Values that can't be
// represented in a record are skipped with a warning.
func Normalize(data map[string]any) gauss.Record {
	rec := Flatten(data)
	Timings(rec)
	Frontier(rec)
	Moments(rec)
	Capitalize(rec)
	return rec
}

// Flatten converts data into a record, without deriving anything.
func Flatten(data map[string]any) gauss.Record {
	rec := gauss.NewRecord()
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		val := data[key]
		if nested, ok := val.(map[string]any); ok {
			for k, v := range nested {
				set(rec, key+"/"+k, v)
			}
			continue
		}
		set(rec, key, val)
	}
	return rec
}

func set(rec gauss.Record, key string, val any) {
	if val == nil {
		slog.Debug("null value skipped", "key", key)
		return
	}
	if err := rec.SetAny(key, val); err != nil {
		slog.Warn("value skipped", "key", key, "error", err)
	}
}

// Merge merges the records in order. Keys in later records overwrite those
// of earlier ones, so the checkpoint and transcript records are usually
// given after the normalized one.
func Merge(recs ...gauss.Record) gauss.Record {
	ret := gauss.NewRecord()
	for _, r := range recs {
		ret.Merge(r)
	}
	return ret
}
