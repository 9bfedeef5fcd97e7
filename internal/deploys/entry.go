package deploys

import (
	"time"

	"gopkg.in/yaml.v3"
)

// TimestampLayout renders UTC timestamps with millisecond precision and a Z suffix.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// TimestampFormatter renders the date of a version entry.
type TimestampFormatter func(time.Time) string

// ISOMillisUTC formats t as 2006-01-02T15:04:05.000Z in UTC.
func ISOMillisUTC(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// VersionEntry is the metadata written for one published version.
type VersionEntry struct {
	Date            time.Time
	TxHash          string
	IPFSHash        string
	ContractAddress string
	CommitHash      string
}

// RecordedVersion is a version entry as read back from a document. Date is
// kept verbatim.
type RecordedVersion struct {
	Version         string `yaml:"-"`
	Date            string `yaml:"date"`
	TxHash          string `yaml:"txHash"`
	IPFSHash        string `yaml:"ipfsHash"`
	ContractAddress string `yaml:"contractAddress"`
	CommitHash      string `yaml:"commitHash"`
}

func (e VersionEntry) node(format TimestampFormatter) *yaml.Node {
	if format == nil {
		format = ISOMillisUTC
	}

	entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	entry.Content = append(entry.Content,
		stringNode("date"), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!timestamp", Value: format(e.Date)},
		stringNode("txHash"), stringNode(e.TxHash),
		stringNode("ipfsHash"), stringNode(e.IPFSHash),
		stringNode("contractAddress"), stringNode(e.ContractAddress),
		stringNode("commitHash"), stringNode(e.CommitHash),
	)
	return entry
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
