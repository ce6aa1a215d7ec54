package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/matryer/is"
)

// The checked in tables must be what the generator writes.
func TestTablesUpToDate(t *testing.T) {
	is := is.New(t)
	want, err := os.ReadFile("../../board/tables.go")
	is.NoErr(err)
	var got bytes.Buffer
	is.NoErr(generate(&got))
	is.Equal(got.String(), string(want))
}
