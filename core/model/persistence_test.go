package model

import (
	"path/filepath"
	"testing"

	"mldemo/pkg/errors"
)

type toyModel struct {
	State *StateManager
	Coef  []float64
}

func TestSaveLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toy.gob")

	orig := &toyModel{State: NewStateManager(), Coef: []float64{1.5, -2.25}}
	orig.State.SetDimensions(2, 100)
	orig.State.SetFitted()

	if err := SaveModel(orig, path); err != nil {
		t.Fatalf("SaveModel() error = %v", err)
	}

	var loaded toyModel
	if err := LoadModel(&loaded, path); err != nil {
		t.Fatalf("LoadModel() error = %v", err)
	}

	if !loaded.State.IsFitted() {
		t.Error("fitted state lost in round trip")
	}
	nFeatures, nSamples := loaded.State.GetDimensions()
	if nFeatures != 2 || nSamples != 100 {
		t.Errorf("dimensions = (%d, %d), want (2, 100)", nFeatures, nSamples)
	}
	if len(loaded.Coef) != 2 || loaded.Coef[0] != 1.5 || loaded.Coef[1] != -2.25 {
		t.Errorf("Coef = %v", loaded.Coef)
	}
}

func TestLoadModelMissing(t *testing.T) {
	var m toyModel
	err := LoadModel(&m, filepath.Join(t.TempDir(), "missing.gob"))

	var nf *errors.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestStateManagerRequireFitted(t *testing.T) {
	s := NewStateManager()

	err := s.RequireFitted("ToyModel", "Predict")
	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFittedError, got %v", err)
	}
	if nfe.ModelName != "ToyModel" || nfe.Method != "Predict" {
		t.Errorf("error fields = %+v", nfe)
	}

	s.SetFitted()
	if err := s.RequireFitted("ToyModel", "Predict"); err != nil {
		t.Errorf("RequireFitted() after SetFitted() = %v", err)
	}

	s.Reset()
	if s.IsFitted() {
		t.Error("Reset() should clear the fitted state")
	}
}
