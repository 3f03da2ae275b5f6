package dbc

import "sync"

// IDField is the field name Table.ByID indexes on.
const IDField = "id"

// Table is a decoded table: its schema, header and records in row order.
type Table struct {
	Schema  *Schema
	Header  Header
	Records []Record

	idOnce sync.Once
	byID   map[uint32]int
}

func newTable(s *Schema, h Header, records []Record) *Table {
	return &Table{Schema: s, Header: h, Records: records}
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.Records) }

// ByID returns the first record whose uint32 "id" field equals id. The
// index is built on first use. Tables whose schema has no uint32 "id"
// field never match.
func (t *Table) ByID(id uint32) (Record, bool) {
	t.idOnce.Do(t.buildIndex)
	i, ok := t.byID[id]
	if !ok {
		return Record{}, false
	}
	return t.Records[i], true
}

func (t *Table) buildIndex() {
	col, ok := t.Schema.Index(IDField)
	if !ok || t.Schema.Field(col).Kind != KindUint32 {
		return
	}
	t.byID = make(map[uint32]int, len(t.Records))
	for i, r := range t.Records {
		id := r.values[col].Uint32()
		if _, dup := t.byID[id]; !dup {
			t.byID[id] = i
		}
	}
}
