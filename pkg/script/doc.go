// Package script compiles frame-synchronous capture scripts.
//
// A capture script is a YAML document that lists, for discrete numbered
// capture frames, the control values to apply when that frame is queued:
//
//	frames:
//	  - 0:
//	      Brightness: 0.5
//	      AeEnable: true
//	  - 40:
//	      ExposureTime: 33000
//
// The compiler walks the document as a stream of structural parse events
// (stream/document/mapping/sequence boundaries and scalars) and imposes the
// script grammar on it in a single depth-first pass, building an immutable
// frame-index -> control-list table. Scalar control values are decoded into
// typed values according to the control's declared type in the device
// catalog.
//
// Failure handling has two tiers. Structural failures - a wrong event kind,
// an unknown section, a control name the catalog does not carry - abort the
// whole compilation and the script must not be queried. Value-decode
// failures (an unsupported bool representation) are logged diagnostics; the
// control keeps the empty value and compilation continues.
//
// A compiled Script is read-only and safe for concurrent frame lookups.
package script
