// Package cooked holds the flat, value-comparable descriptions of the runtime
// footprint of audio assets: which sound banks, media files and external
// sources must be staged and loaded for one asset in one language.
//
// Values in this package never point back into the project database. They are
// safe to copy, compare, hash (as map keys) and serialize. Slices held by a
// cooked value are deduplicated and sorted so two resolutions of the same
// asset produce identical values.
package cooked
