// Package transcode converts characters and strings between target and
// host representations.
//
// Target text arrives as fixed-width code units in one of four kinds:
// narrow (target charset), wide (target wide charset), 16-bit (UTF-16)
// and 32-bit (UTF-32), the last two in the element type's byte order.
// Output is host text with language-style escapes for non-printable and
// malformed input; literal parsing runs the other way, turning host
// escape syntax into target bytes.
//
// String rendering compresses runs of equal characters above a
// configurable threshold into the familiar 'x' <repeats N times> form.
package transcode
