package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/distilbyte/robotsmatch"
)

// batchFile is the YAML shape accepted by --batch: a list of agent/url
// pairs to check against a single robots.txt document.
type batchFile struct {
	Queries []batchFileEntry `yaml:"queries"`
}

type batchFileEntry struct {
	Agents []string `yaml:"agents"`
	URL    string   `yaml:"url"`
}

func loadBatchFile(path, document string) ([]robotsmatch.BatchQuery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bf batchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, err
	}

	queries := make([]robotsmatch.BatchQuery, 0, len(bf.Queries))
	for _, e := range bf.Queries {
		queries = append(queries, robotsmatch.BatchQuery{
			Document: document,
			Agents:   e.Agents,
			URL:      e.URL,
		})
	}
	return queries, nil
}
