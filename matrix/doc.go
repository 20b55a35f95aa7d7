// Package matrix provides the dense numeric storage used by the graph and
// Ising packages.
//
// The package offers:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking, and a finite-only policy.
//   - Validators: ValidateSquare, ValidateSymmetric, ValidateZeroDiagonal and
//     the composite ValidateCouplings used for weight and coupling matrices.
//   - FromRows / ToRows: conversion between [][]float64 literals and Dense.
//
// Dense matrices cost O(n²) memory; they fit the small, fully-enumerable
// instances this module targets.
package matrix
