package main

import (
	"log"
	"os"

	"github.com/segmentio/parquet-go"
)

// Sample is the three-column table used throughout the examples
type Sample struct {
	A int64 `parquet:"A"`
	B int64 `parquet:"B"`
	C int64 `parquet:"C"`
}

// Reading is a mixed-kind table with a string and a float column
type Reading struct {
	Sensor string  `parquet:"sensor"`
	Value  float64 `parquet:"value"`
	Seq    int32   `parquet:"seq"`
}

func write[T any](path string, rows []T) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(rows); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Generated %s with %d rows", path, len(rows))
}

func main() {
	write("sample.parquet", []Sample{
		{A: -1, B: 10, C: 3},
		{A: 2, B: 11, C: 6},
		{A: -3, B: 12, C: 9},
		{A: 4, B: 13, C: 12},
		{A: 5, B: 14, C: 15},
	})

	write("readings.parquet", []Reading{
		{Sensor: "north", Value: 21.5, Seq: 1},
		{Sensor: "south", Value: 19.25, Seq: 2},
		{Sensor: "north", Value: 22.0, Seq: 3},
		{Sensor: "east", Value: -4.75, Seq: 4},
	})
}
