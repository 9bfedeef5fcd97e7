// Package deploys reads and rewrites the per-network deployment records
// (environments/<network>/deploys.yml) of aPM repositories.
package deploys

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is a parsed deployment record. It keeps the YAML node tree so
// rewriting preserves key order and comments.
type Document struct {
	root yaml.Node
}

// ParseDocument parses a deployment record. The top level must be a mapping.
func ParseDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, &doc.root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc.mapping() == nil {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrParse)
	}
	return doc, nil
}

func (d *Document) mapping() *yaml.Node {
	if d.root.Kind != yaml.DocumentNode || len(d.root.Content) == 0 {
		return nil
	}
	top := resolve(d.root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil
	}
	return top
}

// SetVersion replaces the entry for version under the app's versions mapping.
// The entry is written whole; fields of a previous entry are not merged.
func (d *Document) SetVersion(app, version string, entry VersionEntry, format TimestampFormatter) error {
	versions, err := d.versions(app)
	if err != nil {
		return err
	}

	value := entry.node(format)
	if i := keyIndex(versions, version); i >= 0 {
		versions.Content[i+1] = value
		return nil
	}
	versions.Content = append(versions.Content, stringNode(version), value)
	return nil
}

// Version reads back one recorded version of an app.
func (d *Document) Version(app, version string) (RecordedVersion, error) {
	versions, err := d.versions(app)
	if err != nil {
		return RecordedVersion{}, err
	}

	i := keyIndex(versions, version)
	if i < 0 {
		return RecordedVersion{}, fmt.Errorf("%w: %s.versions.%s", ErrMissingKey, AppKey(app), version)
	}
	return decodeVersion(version, versions.Content[i+1])
}

// Versions lists every recorded version of an app in document order.
func (d *Document) Versions(app string) ([]RecordedVersion, error) {
	versions, err := d.versions(app)
	if err != nil {
		return nil, err
	}

	out := make([]RecordedVersion, 0, len(versions.Content)/2)
	for i := 0; i+1 < len(versions.Content); i += 2 {
		rec, err := decodeVersion(versions.Content[i].Value, versions.Content[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Encode writes the document as block-style YAML. Flow collections in the
// input are rewritten as blocks; empty ones still render as {} and [].
func (d *Document) Encode(w io.Writer) error {
	blockStyle(&d.root)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&d.root); err != nil {
		return fmt.Errorf("encode deployment record: %w", err)
	}
	return enc.Close()
}

// Bytes returns the encoded document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) versions(app string) (*yaml.Node, error) {
	key := AppKey(app)

	top := d.mapping()
	if top == nil {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrParse)
	}

	record := lookup(top, key)
	if record == nil || record.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}

	versions := lookup(record, "versions")
	if versions == nil || versions.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s.versions", ErrMissingKey, key)
	}
	return versions, nil
}

func decodeVersion(version string, node *yaml.Node) (RecordedVersion, error) {
	var rec RecordedVersion
	if err := resolve(node).Decode(&rec); err != nil {
		return RecordedVersion{}, fmt.Errorf("%w: version %s: %w", ErrParse, version, err)
	}
	rec.Version = version
	return rec, nil
}

func keyIndex(mapping *yaml.Node, key string) int {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return i
		}
	}
	return -1
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	i := keyIndex(mapping, key)
	if i < 0 {
		return nil
	}
	return resolve(mapping.Content[i+1])
}

func blockStyle(node *yaml.Node) {
	node.Style &^= yaml.FlowStyle
	for _, child := range node.Content {
		blockStyle(child)
	}
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
