package model

// Package model defines the value types shared by the form engine and its hosts:
// row addresses, index sets, animation and scroll enums, and geometry. They carry no
// behavior beyond small predicates so that both hosts can convert them freely.
