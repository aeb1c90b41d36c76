// Package model implements the steady-state process model for a
// single-stage reverse-flotation carbon-removal circuit.
//
// The circuit floats carbon (the unwanted mineral) into the concentrate
// stream, leaving the valuable metal in the tailings-equivalent stream.
// Three control inputs (rougher air rate, Jameson air rate, Luproset
// depressant dosage) and one disturbance input (feed carbon grade) map to
// seven derived outputs: concentrate and tailings carbon grades, the
// two-product mass split, carbon recovery by two independent formulas,
// and the Zn co-flotation loss.
//
// Every function in this package is a total, deterministic function of
// its arguments: out-of-envelope inputs are absorbed by output clamping
// and the mass-balance solver substitutes a fixed fallback triple when
// its denominator degenerates, so nothing here ever returns an error or
// panics. All mutable session state (setpoints, history, disturbance
// walks) belongs to callers; see the plant package.
//
// The coefficients are fixed constants of the model, not fitted from
// plant data. This is a lumped-parameter training model, not a kinetic
// flotation simulation.
package model
