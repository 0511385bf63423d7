package exporter

import (
	"errors"
	"fmt"
	"strconv"

	"rhcli/pkg/contracts/domain"
)

// ErrNoExecutions is returned when a leg aggregate is requested for an
// execution list whose total quantity is zero. The weighted average price
// is undefined in that case.
var ErrNoExecutions = errors.New("exporter: no executions to aggregate")

// AggregateExecutions returns the total filled quantity and the
// quantity-weighted average fill price across a leg's executions.
func AggregateExecutions(executions []domain.Execution) (totalQuantity, weightedAveragePrice float64, err error) {
	if len(executions) == 0 {
		return 0, 0, ErrNoExecutions
	}

	var weightedSum float64
	for _, execution := range executions {
		price, err := strconv.ParseFloat(execution.Price, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("parse execution price %q: %w", execution.Price, err)
		}
		quantity, err := strconv.ParseFloat(execution.Quantity, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("parse execution quantity %q: %w", execution.Quantity, err)
		}

		totalQuantity += quantity
		weightedSum += price * quantity
	}

	if totalQuantity == 0 {
		return 0, 0, ErrNoExecutions
	}

	return totalQuantity, weightedSum / totalQuantity, nil
}
