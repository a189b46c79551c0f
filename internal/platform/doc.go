package platform

// Package platform contains OS integration: config directory resolution,
// directory creation and opening form documents with the system editor.
