package usecase

import (
	"math"

	"li-dashboard-service/internal/dataset"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// withThousands renders numbers with comma grouping ("1,234"). Whole floats
// render like integers; other cells pass through untouched.
func withThousands(v any) any {
	switch x := v.(type) {
	case int64:
		return printer.Sprintf("%d", x)
	case float64:
		if dataset.IsNull(x) {
			return nil
		}
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return printer.Sprintf("%d", int64(x))
		}
		return printer.Sprint(number.Decimal(x))
	default:
		return v
	}
}
