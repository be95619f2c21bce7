package warehouse

import (
	"fmt"
	"strconv"
	"time"

	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/config"
)

const TimestampLayout = "2006-01-02 15:04"

// FormatValue renders one cell as text. NULL renders as the empty string.
func FormatValue(c Column, v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case generator.Money:
		return x.String()
	case time.Time:
		if c.Type == TypeDate {
			return x.Format(config.DateLayout)
		}
		return x.Format(TimestampLayout)
	default:
		return fmt.Sprint(x)
	}
}
