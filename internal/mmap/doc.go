// Package mmap maps report files read-only into memory.
//
// # Usage
//
//	m, err := mmap.Open("reports/day3.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2), with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile; Advise is a no-op
//
// Close is idempotent. Callers must not touch the slice returned by Bytes after Close.
package mmap
