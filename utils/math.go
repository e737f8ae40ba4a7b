package utils

// Fl is the floating-point type layout arithmetic is done in throughout
// this module.
type Fl = float32
