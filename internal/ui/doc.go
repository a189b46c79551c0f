package ui

// Package ui is the Fyne host of the form engine. TableView drives a widget.List
// from a former.DataSource; the cells and rows in this package render labels, text
// fields and inline selectors. FormWindow puts a form document on screen with a
// navigation toolbar and the engine settings dialog. All UI strings are localized
// via Localization.
