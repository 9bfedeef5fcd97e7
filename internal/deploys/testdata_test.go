package deploys

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const rinkebyRecord = `# aPM deployments on rinkeby
voting.aragonpm.eth:
  versions:
    1.0.0:
      date: 2019-01-01T00:00:00.000Z
      txHash: "0x01"
      ipfsHash: QmOld
      contractAddress: "0xAAA"
      commitHash: abc123
finance.aragonpm.eth:
  versions: {}
`

var fixedNow = time.Date(2026, time.October, 18, 12, 30, 45, 123000000, time.FixedZone("CEST", 2*60*60))

func fixedClock() time.Time { return fixedNow }

// writeRecord creates <base>/environments/<network>/deploys.yml.
func writeRecord(t *testing.T, base, network, contents string) string {
	t.Helper()

	path := filepath.Join(base, "environments", network, RecordFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
