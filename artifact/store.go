package artifact

import (
	"bytes"
	"encoding/json"
	"os"

	"mldemo/core/model"
	"mldemo/pkg/errors"
)

// TrainFirstHint is appended to NotFoundError messages so the operator
// knows how to produce the missing artifact.
const TrainFirstHint = "Run the training pipeline first to create the model."

// Store reads and writes one model artifact pair.
type Store struct {
	ModelPath string
	InfoPath  string
}

// NewStore creates a store for the given artifact pair.
func NewStore(modelPath, infoPath string) Store {
	return Store{ModelPath: modelPath, InfoPath: infoPath}
}

// Save writes the model blob and its metadata sidecar. Both documents
// are encoded in memory before anything touches the filesystem, and a
// sidecar write failure removes the model file, so a partial pair is
// never left behind.
func (s Store) Save(m interface{}, info interface{}) error {
	var blob bytes.Buffer
	if err := model.SaveModelToWriter(m, &blob); err != nil {
		return err
	}

	doc, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode model metadata")
	}
	doc = append(doc, '\n')

	if err := os.WriteFile(s.ModelPath, blob.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write model file %s", s.ModelPath)
	}
	if err := os.WriteFile(s.InfoPath, doc, 0o644); err != nil {
		os.Remove(s.ModelPath)
		return errors.Wrapf(err, "failed to write metadata file %s", s.InfoPath)
	}
	return nil
}

// Load reads the artifact pair into the given pointers. Either file
// missing yields a NotFoundError before any decoding happens, so a
// half-present pair is reported, not half-loaded.
func (s Store) Load(m interface{}, info interface{}) error {
	for _, path := range []string{s.ModelPath, s.InfoPath} {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return errors.NewNotFoundError(path, TrainFirstHint)
			}
			return errors.Wrapf(err, "failed to stat artifact %s", path)
		}
	}

	if err := model.LoadModel(m, s.ModelPath); err != nil {
		return err
	}

	doc, err := os.ReadFile(s.InfoPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read metadata file %s", s.InfoPath)
	}
	if err := json.Unmarshal(doc, info); err != nil {
		return errors.Wrapf(err, "failed to decode model metadata %s", s.InfoPath)
	}
	return nil
}
