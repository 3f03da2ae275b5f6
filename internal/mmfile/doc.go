// Package mmfile loads table files into memory, read-only mmap on unix and
// a plain read elsewhere.
package mmfile
