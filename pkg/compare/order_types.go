package compare

type OrderType int

const (
	OT_INVALID OrderType = iota
	OT_DEFAULT
	OT_ASC
	OT_DESC
)

type OrderByNullType int

const (
	OBNT_INVALID OrderByNullType = iota
	OBNT_DEFAULT
	OBNT_NULLS_FIRST
	OBNT_NULLS_LAST
)

// CmpResult is the tri-state verdict of one element comparison.
// CMP_EQUIVALENT is weaker than equality: neither side is less than
// the other under the configured rules.
type CmpResult int

const (
	CMP_LESS CmpResult = iota
	CMP_EQUIVALENT
	CMP_GREATER
)

func (r CmpResult) String() string {
	switch r {
	case CMP_LESS:
		return "less"
	case CMP_EQUIVALENT:
		return "equivalent"
	case CMP_GREATER:
		return "greater"
	}
	return "invalid"
}
