// Package station holds the station list and its CSV persistence.
//
// The file format is a header row followed by one station per row:
//
//	name,url
//	"Jazz, Blues & More",http://example.com/stream
//
// Every mutation rewrites the whole file through a temporary file in the same
// directory. A failed write is returned to the caller while the in-memory list
// keeps the change, so the UI stays usable when the disk is not.
package station
