package profit

import "errors"

var (
	ErrNoProfitData = errors.New("no profits found for this owner")
)
