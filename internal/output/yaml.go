package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter emits a YAML sequence of records with keys in header order.
type YAMLFormatter struct{}

func (YAMLFormatter) Format(w io.Writer, data Dataset) error {
	headers := normalizeHeaders(data.Headers, data.Rows)
	rows := normalizeRows(data.Rows, len(headers))

	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(rows) == 0 {
		seq.Style = yaml.FlowStyle
	}
	for _, row := range rows {
		record := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, header := range headers {
			record.Content = append(record.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: header},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: row[i]},
			)
		}
		seq.Content = append(seq.Content, record)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return err
	}
	return enc.Close()
}
