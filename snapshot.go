package sunaba

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Raw binary snapshots of a single storage, for a surrounding
// persistence layer. The byte image is the live prefix of the dense
// arrays, little-endian: a uint32 entry count, the entity ids, then the
// component values. T must be a fixed-layout type (the built-in kinds
// all are); a T that encoding/binary cannot size yields an error.
// Defining an actual save-file format on top of this is the caller's
// business.

// WriteTo dumps the storage's entries to w. It implements io.WriterTo.
func (s *Storage[T]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := binary.Write(cw, binary.LittleEndian, uint32(s.count)); err != nil {
		return cw.n, err
	}
	if s.count > 0 {
		if err := binary.Write(cw, binary.LittleEndian, s.dense[:s.count]); err != nil {
			return cw.n, err
		}
		if err := binary.Write(cw, binary.LittleEndian, s.values[:s.count]); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// ReadFrom replaces the storage's contents with a snapshot previously
// written by WriteTo, rebuilding the sparse index. It implements
// io.ReaderFrom. On any error the storage is left unchanged.
func (s *Storage[T]) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	var n uint32
	if err := binary.Read(cr, binary.LittleEndian, &n); err != nil {
		return cr.n, err
	}
	if n > MaxEntities {
		return cr.n, fmt.Errorf("sunaba: snapshot entry count %d exceeds MaxEntities", n)
	}
	dense := make([]Entity, n)
	values := make([]T, n)
	if n > 0 {
		if err := binary.Read(cr, binary.LittleEndian, dense); err != nil {
			return cr.n, err
		}
		if err := binary.Read(cr, binary.LittleEndian, values); err != nil {
			return cr.n, err
		}
	}
	sparse := make([]uint32, MaxEntities)
	for i := range sparse {
		sparse[i] = invalidIndex
	}
	for i, e := range dense {
		if e == NullEntity || e >= MaxEntities {
			return cr.n, fmt.Errorf("sunaba: snapshot entity %d out of range", e)
		}
		if sparse[e] != invalidIndex {
			return cr.n, fmt.Errorf("sunaba: snapshot entity %d appears twice", e)
		}
		sparse[e] = uint32(i)
	}
	s.sparse = sparse
	s.dense = dense
	s.values = values
	s.count = int(n)
	return cr.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
