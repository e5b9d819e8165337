package common

// UnknownStr is the String() of enum values outside their declared set.
const UnknownStr = "unknown"
