// Package normalize turns raw backend payloads into the canonical models.
//
// The backend has changed how it represents images and several item fields
// more than once, so payloads are decoded into generic maps and mapped here,
// at one seam, instead of in every view. Normalizers never fail: missing or
// unparseable data degrades to defaults and the placeholder image. Running
// a normalizer over its own output returns the same value.
package normalize
