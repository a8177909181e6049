// Package readings loads diagnostic reports.
//
// A report holds one reading per record. Records are CSV lines; the first field is the
// reading and surrounding whitespace is dropped. Blank lines are skipped and there is no
// header row.
//
// Reports may be stored compressed. NewReader recognizes zstd, gzip and lz4 frames by
// their magic bytes and decompresses transparently:
//
//	rc, err := readings.NewReader(f)
//	if err != nil { ... }
//	defer rc.Close()
//	lines, err := readings.Parse(rc)
package readings
