package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/halfcar/internal/sim"
)

func sampleRecords() []sim.Record {
	return []sim.Record{
		{T: 0, Ys: 0, Theta: 0, Yu1: 0, Yu2: 0, VAbs: 0, XAbs: 0},
		{T: 0.001, Ys: -1.7e-5, Theta: 0.0003, Yu1: 2e-6, Yu2: -3e-6, VAbs: 0.0033, XAbs: 3.3e-6},
		{T: 0.002, Ys: -6.5e-5, Theta: 0.0011, Yu1: 8e-6, Yu2: -9e-6, VAbs: 0.0066, XAbs: 9.9e-6},
	}
}

func TestWriteRecordsHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, sampleRecords()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "time,ys,theta,yu1,yu2,v_abs,x_abs" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 4 {
		t.Errorf("line count = %d, want header + 3 rows", len(lines))
	}
}

func TestRecordsRoundtrip(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	if err := WriteRecords(&buf, records); err != nil {
		t.Fatal(err)
	}

	got, err := ReadRecords(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != len(records) {
		t.Fatalf("len = %d, want %d", len(got), len(records))
	}
	for i := range got {
		if got[i] != records[i] {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], records[i])
		}
	}
}

func TestReadRecordsEmpty(t *testing.T) {
	got, err := ReadRecords(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestWriteRecordsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != strings.Join(Header, ",") {
		t.Errorf("empty export should be header only: %q", buf.String())
	}
}
