package types

// Version is the canonical project version reported by the CLI.
// Bump here, nowhere else.
const Version = "0.2.0"
