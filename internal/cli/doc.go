package cli

// Package cli implements the former command line: run a form document in the
// fyne or terminal host, validate documents and print their JSON Schema.
