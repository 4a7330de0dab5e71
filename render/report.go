package render

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knightpaths/knight"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report is the serializable summary of a PathSet.
type Report struct {
	Start string     `json:"start" yaml:"start"`
	End   string     `json:"end" yaml:"end"`
	Moves int        `json:"moves" yaml:"moves"`
	Count int        `json:"count" yaml:"count"`
	Paths [][]string `json:"paths" yaml:"paths"`
}

// NewReport builds a Report with paths in sorted order.
func NewReport(ps knight.PathSet) Report {
	sorted := ps.Sorted()
	r := Report{
		Start: ps.Start.String(),
		End:   ps.End.String(),
		Moves: ps.Moves(),
		Count: ps.Len(),
		Paths: make([][]string, len(sorted.Paths)),
	}
	for i, p := range sorted.Paths {
		r.Paths[i] = p.Strings()
	}
	return r
}

// WriteText writes a human-readable listing, one numbered path per line.
func WriteText(w io.Writer, ps knight.PathSet) error {
	if err := checkSet(ps); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d shortest path(s) from %v to %v, %d move(s) each\n",
		ps.Len(), ps.Start, ps.End, ps.Moves()); err != nil {
		return err
	}
	for i, p := range ps.Sorted().Paths {
		if _, err := fmt.Fprintf(w, "Path %d: %v\n", i+1, p); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes NewReport(ps) as indented JSON.
func WriteJSON(w io.Writer, ps knight.PathSet) error {
	if err := checkSet(ps); err != nil {
		return err
	}
	b, err := json.MarshalIndent(NewReport(ps), "", "  ")
	if err != nil {
		return fmt.Errorf("render: encode json: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// WriteYAML writes NewReport(ps) as YAML.
func WriteYAML(w io.Writer, ps knight.PathSet) error {
	if err := checkSet(ps); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewReport(ps)); err != nil {
		return fmt.Errorf("render: encode yaml: %w", err)
	}
	return enc.Close()
}
