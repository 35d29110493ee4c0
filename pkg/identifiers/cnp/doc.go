// Package cnp decodes and validates the Romanian personal numeric code
// (Cod Numeric Personal).
//
// A CNP is 13 digits laid out as S YY MM DD JJ NNN C:
//
//	S    sex and century of birth
//	YY   year of birth within the century
//	MM   month of birth
//	DD   day of birth
//	JJ   county of registration (see package county)
//	NNN  sequence number for the county and day
//	C    control digit over the first twelve digits
//
// Everything here is pure: the only external input is the reference time
// used to reject birth dates in the future, and that is always passed in
// by the caller.
package cnp
