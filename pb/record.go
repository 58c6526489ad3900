package metricxpb

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"metricx"
)

// NewRecord converts a record to a protobuf Struct. The timestamp goes
// through timestamppb and is kept as RFC 3339 text with nanoseconds.
func NewRecord(rec metricx.ConversionRecord) (*structpb.Struct, error) {
	ts := timestamppb.New(rec.Timestamp)
	if err := ts.CheckValid(); err != nil {
		return nil, fmt.Errorf("timestamp: %w", err)
	}
	return structpb.NewStruct(map[string]any{
		"id":               rec.ID,
		"category":         rec.Category,
		"from_unit":        rec.FromUnit,
		"to_unit":          rec.ToUnit,
		"input":            rec.InputValue,
		"output":           rec.OutputValue,
		"formatted_input":  rec.FormattedInput,
		"formatted_output": rec.FormattedOutput,
		"date":             ts.AsTime().Format(time.RFC3339Nano),
	})
}

func ToRecord(s *structpb.Struct) (metricx.ConversionRecord, error) {
	f := s.GetFields()
	rec := metricx.ConversionRecord{
		ID:              f["id"].GetStringValue(),
		Category:        f["category"].GetStringValue(),
		FromUnit:        f["from_unit"].GetStringValue(),
		ToUnit:          f["to_unit"].GetStringValue(),
		InputValue:      f["input"].GetNumberValue(),
		OutputValue:     f["output"].GetNumberValue(),
		FormattedInput:  f["formatted_input"].GetStringValue(),
		FormattedOutput: f["formatted_output"].GetStringValue(),
	}
	if date := f["date"].GetStringValue(); date != "" {
		t, err := time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return rec, fmt.Errorf("date: %w", err)
		}
		rec.Timestamp = t
	}
	return rec, nil
}

type Codec struct{}

var _ metricx.RecordCodec = Codec{}

func (Codec) Name() string { return "protobuf" }

func (Codec) Marshal(rec metricx.ConversionRecord) ([]byte, error) {
	s, err := NewRecord(rec)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func (Codec) Unmarshal(data []byte) (metricx.ConversionRecord, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return metricx.ConversionRecord{}, err
	}
	return ToRecord(&s)
}
