package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

const _customTimeLayout = "2006-01-02 15:04:05 MST"

func timeQueryParams(r *http.Request, key string, layout ...string) (time.Time, bool, error) {
	layout = append(layout, _customTimeLayout)
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return time.Time{}, false, nil
	}
	val = strings.TrimPrefix(val, "'")
	val = strings.TrimPrefix(val, "\"")
	val = strings.TrimSuffix(val, "'")
	val = strings.TrimSuffix(val, "\"")
	t, err := time.Parse(layout[0], val)
	if err != nil {
		// Fall back to RFC 3339, which is what browsers and the SPA send.
		if rt, rerr := time.Parse(time.RFC3339, val); rerr == nil {
			return rt, true, nil
		}
	}
	return t, true, err
}

func defaultIntQueryParams(r *http.Request, key string, def int) int {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return i
}
