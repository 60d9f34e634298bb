// Copyright 2025 The Stadiums Authors
//
// SPDX-License-Identifier: Apache-2.0
package spatial

// Approximate boxes for the continental US, Alaska and Hawaii. They do not
// overlap, so at most one contains a given point.
var (
	Continental = BoundingBox{Name: "continental", MinLat: 24.7, MaxLat: 49.4, MinLng: -125.0, MaxLng: -66.9}
	Alaska      = BoundingBox{Name: "alaska", MinLat: 51.0, MaxLat: 71.5, MinLng: -180.0, MaxLng: -130.0}
	Hawaii      = BoundingBox{Name: "hawaii", MinLat: 18.7, MaxLat: 22.5, MinLng: -160.3, MaxLng: -154.5}
)

// USRegions returns the US bounding boxes in a fixed order.
func USRegions() []BoundingBox {
	return []BoundingBox{Continental, Alaska, Hawaii}
}

// RegionOf returns the name of the US region containing the point, or "" when
// the point is outside all of them.
func RegionOf(lat, lng float64) string {
	p := Point{Lat: lat, Lng: lng}
	for _, r := range USRegions() {
		if r.Contains(p) {
			return r.Name
		}
	}

	return ""
}

// InUSBounds reports whether the point is inside any US region.
func InUSBounds(lat, lng float64) bool {
	return RegionOf(lat, lng) != ""
}
