package tui

// Package tui is the terminal host of the form engine. Table implements
// former.TableView over a bubbles viewport; Model is the bubbletea program that
// moves a cursor over the rows, edits text rows in an input panel and posts the
// panel's frame as a keyboard notification so the engine keeps the edited row
// in view.
