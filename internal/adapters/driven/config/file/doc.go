// Package file provides the TOML-backed configuration store.
//
// Keys are addressed in dot notation ("fees.paypal_rate") and written back
// as TOML tables:
//
//	[fees]
//	paypal_rate = "0.05"
//	enabled = ["credit_card", "paypal", "pix"]
//
// By default the file lives at ~/.solidkit/config.toml.
package file
