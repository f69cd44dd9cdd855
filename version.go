package latch

// Version is the current release of the library.
const Version = "0.2.0"
