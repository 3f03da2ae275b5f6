// Package dbc decodes DBC tables: fixed-layout binary files whose rows are
// flat arrays of little-endian 4-byte cells.
//
// # File Structure
//
//	[Header - 16 bytes] [Rows - count * recordSize] [String block]
//
// The header holds four uint32s: record count, field count, record size and
// string block size. Client-shipped files prefix it with the "WDBC" magic;
// set Options.Signature to expect it.
//
// String fields store a byte offset into the string block, which holds
// NUL-terminated strings. Offset 0 is the conventional empty string.
// Localized string fields store one offset per locale followed by a locale
// mask.
//
// # Decoding
//
// A Schema lists the fields of a row in order. One generic decoder handles
// every table:
//
//	schema := dbc.MustSchema("spell-rune-cost", dbc.DefaultLocaleCount,
//	    dbc.U32("id"),
//	    dbc.U32("bloodRuneCost"),
//	    dbc.U32("unholyRuneCost"),
//	    dbc.U32("frostRuneCost"),
//	    dbc.U32("runePowerGain"),
//	)
//
//	records, err := dbc.Decode(schema, data)
//	if err != nil {
//	    var mte *dbc.MalformedTableError
//	    if errors.As(err, &mte) {
//	        log.Printf("skipping table: %s", mte.Reason)
//	    }
//	    return err
//	}
//	for _, r := range records {
//	    fmt.Println(r.Uint32("id"), r.Uint32("runePowerGain"))
//	}
//
// Decoding is all-or-nothing: a structurally invalid buffer yields a
// *MalformedTableError and no records. Decoded records copy their strings
// and never reference the input buffer.
//
// # Thread Safety
//
// Schemas and Decoders are immutable. Decode keeps no state between calls,
// so distinct buffers can be decoded from many goroutines at once.
//
// # Related Packages
//
//   - github.com/joshuapare/dbckit/schemas: built-in table schemas
package dbc
