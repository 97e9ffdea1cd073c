package app

import "github.com/llehouerou/tablewizard/internal/dataset"

// InitResult holds the result of async table loading.
type InitResult struct {
	Table *dataset.Table
	Err   error
}
