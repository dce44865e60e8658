package storage

// SetupTestDatabase exposes setupTestDatabase to external test packages.
var SetupTestDatabase = setupTestDatabase
