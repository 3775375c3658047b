package packager

import "errors"

// ErrNoPayloadFiles is returned when the root directory contains no
// files at all (spec.md §7, "Invariant error").
var ErrNoPayloadFiles = errors.New("packager: no payload files found")

// ErrManifestNotFound is returned when no file named AppxManifest.xml
// was found at the root of the directory being packaged.
var ErrManifestNotFound = errors.New("packager: AppxManifest.xml not found")

// ErrOPCEncodeFailed is returned when a payload file's relative path
// cannot be OPC-encoded (spec.md §4.4, "On any decoding anomaly... a
// fatal pack error").
var ErrOPCEncodeFailed = errors.New("packager: OPC name encoding failed")
