package converters

const (
	ErrMsgNotBool         = "Given parameter not a bool"
	ErrMsgNotNumber       = "Given parameter not a number"
	ErrMsgNotString       = "Given parameter not a string"
	ErrMsgNotInteger      = "Given parameter not an integral number"
	ErrMsgBadTimestamp    = "Bad timestamp, expected epoch milliseconds, RFC3339, YYYY-MM-DD HH:MM:SS, YYYY-MM-DD or YYYYMMDD"
	ErrMsgTimestampParam  = "Timestamp parameter cannot be empty."
	ErrMsgOutOfRangeValue = "Given number overflows the target type"
)
