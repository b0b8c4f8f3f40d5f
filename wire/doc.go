// Package wire holds the JSON payload shapes exchanged with the platform API.
// Field names are the bit-exact contract; unrecognized payload fields are
// ignored rather than rejected.
package wire
