package logger

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Field = zap.Field

var (
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Int64    = zap.Int64
	Bool     = zap.Bool
	Duration = zap.Duration
	Any      = zap.Any
	ErrorF   = zap.Error
)

// Decimal logs d in its exact string form.
func Decimal(key string, d decimal.Decimal) Field { return zap.Stringer(key, d) }
