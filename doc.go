// Package mldemo contains two self-contained demo pipelines: a customer
// churn classifier backed by a random forest and a house price
// regressor backed by ordinary least squares.
//
// Each pipeline synthesizes a deterministic tabular dataset, fits its
// model on a seeded train/test split, evaluates on the held-out fold,
// and persists the fitted model together with a JSON metadata sidecar.
// A later run reloads the artifact pair and serves predictions for
// named feature mappings.
//
// Entry points live under cmd/churn and cmd/houseprice; the pipeline
// package wires the pieces together.
package mldemo
