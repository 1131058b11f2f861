package dataset

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"log"
	"os"
)

// snapshot is the gob payload; indexes are rebuilt on decode
type snapshot struct {
	Records []Record
}

// SerializeDataset encodes the records of a Dataset using gob encoding.
// This is useful for disk-based caching to avoid re-parsing the CSV.
//
// Thread safety: Safe for concurrent use; a Dataset never changes after construction.
func SerializeDataset(ds *Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeDatasetToWriter(ds, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeDataset decodes a Dataset previously produced by SerializeDataset
func DeserializeDataset(data []byte) (*Dataset, error) {
	return DeserializeDatasetFromReader(bytes.NewReader(data))
}

// SerializeDatasetToFile writes a gob snapshot of ds to path
func SerializeDatasetToFile(ds *Dataset, path string) error {
	data, err := SerializeDataset(ds)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DeserializeDatasetFromFile reads a gob snapshot from path
func DeserializeDatasetFromFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return DeserializeDataset(data)
}

// SerializeDatasetToWriter writes a gob snapshot of ds to w
func SerializeDatasetToWriter(ds *Dataset, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(snapshot{Records: ds.records}); err != nil {
		return fmt.Errorf("failed to encode Dataset: %w", err)
	}
	return nil
}

// DeserializeDatasetFromReader reads a gob snapshot from r
func DeserializeDatasetFromReader(r io.Reader) (*Dataset, error) {
	var snap snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode Dataset: %w", err)
	}
	return New(snap.Records), nil
}

// LoadFileCached loads path through a gob snapshot at cachePath.
// A snapshot is used only when it is newer than the source file; otherwise the
// CSV is parsed and the snapshot rewritten. An empty cachePath disables caching.
func LoadFileCached(path, cachePath string, opts LoadOptions) (*Dataset, error) {
	if cachePath == "" {
		return LoadFileWithOptions(path, opts)
	}
	src, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	if fi, err := os.Stat(cachePath); err == nil && fi.ModTime().After(src.ModTime()) {
		ds, err := DeserializeDatasetFromFile(cachePath)
		if err == nil {
			log.Printf("dataset: loaded %d records from snapshot %s", ds.Len(), cachePath)
			return ds, nil
		}
		log.Printf("dataset: ignoring snapshot %s: %v", cachePath, err)
	}
	ds, err := LoadFileWithOptions(path, opts)
	if err != nil {
		return nil, err
	}
	if err := SerializeDatasetToFile(ds, cachePath); err != nil {
		log.Printf("dataset: writing snapshot %s: %v", cachePath, err)
	}
	return ds, nil
}
