package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/halfcar/internal/sim"
)

// Header is the column order of exported run data.
var Header = []string{"time", "ys", "theta", "yu1", "yu2", "v_abs", "x_abs"}

// WriteRecords writes the run as CSV: a header row, then one row per step
// in time order.
func WriteRecords(w io.Writer, records []sim.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	row := make([]string, len(Header))
	for _, r := range records {
		vals := [...]float64{r.T, r.Ys, r.Theta, r.Yu1, r.Yu2, r.VAbs, r.XAbs}
		for i, v := range vals {
			row[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteRecordsFile writes the run CSV to path.
func WriteRecordsFile(path string, records []sim.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteRecords(file, records)
}

// ReadRecords parses a run CSV written by WriteRecords.
func ReadRecords(r io.Reader) ([]sim.Record, error) {
	cr := csv.NewReader(r)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]sim.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		vals := make([]float64, len(Header))
		for i := range vals {
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		records = append(records, sim.Record{
			T: vals[0], Ys: vals[1], Theta: vals[2],
			Yu1: vals[3], Yu2: vals[4],
			VAbs: vals[5], XAbs: vals[6],
		})
	}
	return records, nil
}
