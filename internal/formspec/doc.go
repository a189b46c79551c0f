package formspec

// Package formspec reads declarative form documents (YAML, TOML or JSON),
// validates them and builds the section/row tree a Former displays.
