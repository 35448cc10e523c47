package main

import (
	"fmt"
	"os"

	wildcard "github.com/IGLOU-EU/go-wildcard/v2"
	"gopkg.in/yaml.v2"
)

// Case is one entry of a batch file.
//
//	- name: plus and anchors
//	  pattern: ^b+a*d+$
//	  subject: baaaad
//	  want: true
type Case struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Subject string `yaml:"subject"`
	Want    bool   `yaml:"want"`
}

// loadCases reads a YAML list of cases from path.
func loadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases, err := parseCases(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// parseCases decodes a YAML list of cases. Unknown keys are rejected so a
// misspelled field does not silently become the zero value. Cases without a
// name are named after their position.
func parseCases(data []byte) ([]Case, error) {
	var cases []Case
	if err := yaml.UnmarshalStrict(data, &cases); err != nil {
		return nil, err
	}
	for i := range cases {
		if cases[i].Name == "" {
			cases[i].Name = fmt.Sprintf("case-%d", i+1)
		}
	}
	return cases, nil
}

// filterCases keeps the cases whose name matches glob, in which '*' matches
// any run of characters, '?' one or none and '.' exactly one. An empty glob
// keeps everything.
func filterCases(cases []Case, glob string) []Case {
	if glob == "" {
		return cases
	}
	var out []Case
	for _, c := range cases {
		if wildcard.Match(glob, c.Name) {
			out = append(out, c)
		}
	}
	return out
}
