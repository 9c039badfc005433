package main

import (
	"io"

	"gopkg.in/yaml.v3"
)

type _Report struct {
	Part1  *int64   `yaml:"part1,omitempty"`
	Part2  *int64   `yaml:"part2,omitempty"`
	Merge  string   `yaml:"merge"`
	Ranges []string `yaml:"ranges"`
}

func _writeAnswers(w io.Writer, format string, ans Answers) error {
	if format == "yaml" {
		return _writeYAML(w, ans)
	}
	if ans.Part1 != nil {
		fprintf(w, "Part 1: %d\n", *ans.Part1)
	}
	if ans.Part2 != nil {
		fprintf(w, "Part 2: %d\n", *ans.Part2)
	}
	return nil
}

func _writeYAML(w io.Writer, ans Answers) error {
	report := _Report{
		Part1:  ans.Part1,
		Part2:  ans.Part2,
		Merge:  ans.Set.MergeRule().String(),
		Ranges: []string{},
	}
	for _, r := range ans.Set.Ranges() {
		report.Ranges = append(report.Ranges, r.String())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&report); err != nil {
		return err
	}
	return enc.Close()
}
