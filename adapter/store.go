package adapter

import (
	"context"

	"github.com/viant/afs"
)

// DocumentStore loads Datalog+/- source from any afs-backed location
// (local disk, s3://, gs://, mem://, ...), the same single-file-load idiom
// inspector/info.CreateDocuments uses to pull each source file it
// documents. It is the module's only filesystem/network dependency; every
// other package takes source as plain []byte and never touches afs.
type DocumentStore struct {
	fs afs.Service
}

// NewDocumentStore returns a DocumentStore backed by afs.New(), the
// default multi-scheme service.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{fs: afs.New()}
}

// Load downloads the document at location and returns its raw bytes, ready
// to hand to Analyzer.Analyze.
func (s *DocumentStore) Load(ctx context.Context, location string) ([]byte, error) {
	return s.fs.DownloadWithURL(ctx, location)
}
