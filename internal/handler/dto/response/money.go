package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Amounts leave the service as fixed two-decimal strings.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatNullAmount(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := formatAmount(d.Decimal)
	return &s
}

var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return formatAmount(src.(decimal.Decimal)), nil
			},
		},
	},
}

func copyInto(to, from any) error {
	return copier.CopyWithOption(to, from, copyOptions)
}
