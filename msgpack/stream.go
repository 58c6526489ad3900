package metricxmsgpack

import (
	"bytes"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"metricx"
)

// WriteRecords writes recs back to back, the format RecordBuffer reads.
func WriteRecords(w io.Writer, recs []metricx.ConversionRecord) error {
	enc := msgpack.NewEncoder(w)
	for i := range recs {
		r := NewRecord(recs[i])
		if err := enc.Encode(&r); err != nil {
			return err
		}
	}
	return nil
}

// RecordBuffer decodes a history export that may arrive in pieces.
// Bytes of a record that is still incomplete stay buffered for the next Feed.
type RecordBuffer struct {
	buf bytes.Buffer
}

func (rb *RecordBuffer) Feed(data []byte) ([]metricx.ConversionRecord, error) {
	rb.buf.Write(data)

	var results []metricx.ConversionRecord
	for rb.buf.Len() > 0 {
		rd := bytes.NewReader(rb.buf.Bytes())
		dec := msgpack.NewDecoder(rd)
		var r Record
		if err := dec.Decode(&r); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				// not enough data yet, stop
				break
			}
			return results, err
		}
		rb.buf.Next(rb.buf.Len() - rd.Len())
		results = append(results, ToRecord(&r))
	}
	return results, nil
}

// Pending reports how many bytes wait for the rest of a record.
func (rb *RecordBuffer) Pending() int {
	return rb.buf.Len()
}

// ReadRecords decodes a complete export.
func ReadRecords(r io.Reader) ([]metricx.ConversionRecord, error) {
	var rb RecordBuffer
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	recs, err := rb.Feed(data)
	if err != nil {
		return recs, err
	}
	if rb.Pending() > 0 {
		return recs, io.ErrUnexpectedEOF
	}
	return recs, nil
}
