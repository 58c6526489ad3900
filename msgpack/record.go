package metricxmsgpack

import (
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"metricx"
)

type Record struct {
	ID              string  `msgpack:"id,omitempty"`
	Category        string  `msgpack:"category,omitempty"`
	FromUnit        string  `msgpack:"from_unit,omitempty"`
	ToUnit          string  `msgpack:"to_unit,omitempty"`
	InputValue      float64 `msgpack:"input"`
	OutputValue     float64 `msgpack:"output"`
	FormattedInput  string  `msgpack:"formatted_input,omitempty"`
	FormattedOutput string  `msgpack:"formatted_output,omitempty"`
	DatetimeMs      int64   `msgpack:"date,omitempty"`
}

func NewRecord(rec metricx.ConversionRecord) Record {
	return Record{
		ID:              rec.ID,
		Category:        rec.Category,
		FromUnit:        rec.FromUnit,
		ToUnit:          rec.ToUnit,
		InputValue:      rec.InputValue,
		OutputValue:     rec.OutputValue,
		FormattedInput:  rec.FormattedInput,
		FormattedOutput: rec.FormattedOutput,
		DatetimeMs:      rec.Timestamp.UnixMilli(),
	}
}

func ToRecord(r *Record) metricx.ConversionRecord {
	return metricx.ConversionRecord{
		ID:              r.ID,
		Category:        r.Category,
		FromUnit:        r.FromUnit,
		ToUnit:          r.ToUnit,
		InputValue:      r.InputValue,
		OutputValue:     r.OutputValue,
		FormattedInput:  r.FormattedInput,
		FormattedOutput: r.FormattedOutput,
		Timestamp:       time.UnixMilli(r.DatetimeMs),
	}
}

// Codec stores history rows as msgpack maps. Timestamps keep millisecond
// precision.
type Codec struct{}

var _ metricx.RecordCodec = Codec{}

func (Codec) Name() string { return "msgpack" }

func (Codec) Marshal(rec metricx.ConversionRecord) ([]byte, error) {
	r := NewRecord(rec)
	return msgpack.Marshal(&r)
}

func (Codec) Unmarshal(data []byte) (metricx.ConversionRecord, error) {
	var r Record
	err := msgpack.Unmarshal(data, &r)
	return ToRecord(&r), err
}
