package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrUnknownChartKind = goerr.New("unknown chart kind")
	ErrInvalidCatalog   = goerr.New("invalid catalog")
)
