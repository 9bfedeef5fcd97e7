package deploys

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Request describes one version entry to record.
type Request struct {
	Base     string
	App      string
	Network  string
	Version  string
	CID      string
	Contract string
	Commit   string
	TxHash   string
}

// Result is the outcome of planning or applying an update.
type Result struct {
	ReadPath  string
	WritePath string
	Entry     VersionEntry
	Data      []byte
}

// Updater records version entries in a network's deployment record.
type Updater struct {
	Store  Store
	Clock  func() time.Time
	Format TimestampFormatter
	Logger *zap.Logger

	// LegacyWritePath writes to environments/<network>/deploys.yml relative to
	// the working directory, ignoring Base, while still reading from Base.
	LegacyWritePath bool
}

// Plan loads the record and applies the entry in memory without saving.
func (u Updater) Plan(ctx context.Context, req Request) (Result, error) {
	readPath := RecordPath(req.Base, req.Network)
	writePath := readPath
	if u.LegacyWritePath {
		writePath = RelativeRecordPath(req.Network)
	}

	logger := u.logger().With(zap.String("app", AppKey(req.App)), zap.String("version", req.Version))
	logger.Debug("loading deployment record", zap.String("path", readPath))

	raw, err := u.Store.Load(ctx, readPath)
	if err != nil {
		return Result{}, err
	}

	doc, err := ParseDocument(raw)
	if err != nil {
		return Result{}, err
	}

	entry := VersionEntry{
		Date:            u.now(),
		TxHash:          req.TxHash,
		IPFSHash:        req.CID,
		ContractAddress: req.Contract,
		CommitHash:      req.Commit,
	}
	if err := doc.SetVersion(req.App, req.Version, entry, u.Format); err != nil {
		return Result{}, err
	}

	data, err := doc.Bytes()
	if err != nil {
		return Result{}, err
	}

	return Result{ReadPath: readPath, WritePath: writePath, Entry: entry, Data: data}, nil
}

// Update plans the entry and writes the rewritten record.
func (u Updater) Update(ctx context.Context, req Request) (Result, error) {
	res, err := u.Plan(ctx, req)
	if err != nil {
		return Result{}, err
	}

	store := u.Store
	if u.LegacyWritePath {
		store = FileStore{}
	}
	if err := store.Save(ctx, res.WritePath, res.Data); err != nil {
		return Result{}, err
	}

	u.logger().Info("recorded version",
		zap.String("app", AppKey(req.App)),
		zap.String("version", req.Version),
		zap.String("path", res.WritePath))
	return res, nil
}

func (u Updater) now() time.Time {
	if u.Clock != nil {
		return u.Clock()
	}
	return time.Now()
}

func (u Updater) logger() *zap.Logger {
	if u.Logger != nil {
		return u.Logger
	}
	return zap.NewNop()
}
