package dataset

import "embed"

// Sample is the dataset shipped with the binary. It is used whenever no
// dataset file is configured.
//
//go:embed sample/*.json
var Sample embed.FS

// Paths of the embedded sample files inside Sample.
const (
	SampleUsersPath  = "sample/users.json"
	SampleStocksPath = "sample/stocks.json"
)
