package main

import (
	"fmt"
	"log"
	"time"

	"metricx"
	metricxmsgpack "metricx/msgpack"
	metricxpb "metricx/pb"
)

func main() {
	converter := metricx.NewConverter(nil)
	conv, err := converter.Convert(1, "light-year", "astronomical-unit")
	if err != nil {
		log.Fatal(err)
	}
	rec := conv.Record

	codecs := []metricx.RecordCodec{metricxmsgpack.Codec{}, metricxpb.Codec{}}
	for _, c := range codecs {
		start := time.Now()
		var bin []byte
		for i := 0; i < 10000; i++ {
			bin, err = c.Marshal(rec)
			if err != nil {
				log.Fatal(err)
			}
		}
		encodeTime := time.Since(start)

		start = time.Now()
		var decoded metricx.ConversionRecord
		for i := 0; i < 10000; i++ {
			decoded, err = c.Unmarshal(bin)
			if err != nil {
				log.Fatal(err)
			}
		}
		decodeTime := time.Since(start)

		fmt.Printf("%s:\n", c.Name())
		fmt.Printf("  size: %d bytes\n", len(bin))
		fmt.Printf("  encode x10000: %v\n", encodeTime)
		fmt.Printf("  decode x10000: %v\n", decodeTime)
		fmt.Printf("  roundtrip: %s %s = %s %s\n", decoded.FormattedInput, decoded.FromUnit, decoded.FormattedOutput, decoded.ToUnit)
	}
}
