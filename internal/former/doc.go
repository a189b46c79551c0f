package former

// Package former keeps a tree of section and row descriptors in sync with a host
// list control. Former answers the host's data-source queries, applies structural
// mutations as batched updates, runs the selection and inline-row state machine and
// moves the focused row out from under the on-screen keyboard. Hosts (fyne, terminal)
// implement TableView and the Cell/View contracts; rows embed BaseRowFormer.
