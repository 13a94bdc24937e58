package chunk

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"

	"github.com/daviszhen/rowcmp/pkg/common"
)

// Value boxes one scalar. It only exists at the edges: file scan and
// test fixtures. The comparator itself never materializes values.
type Value struct {
	Typ    common.LType
	IsNull bool
	//value
	Bool  bool
	I64   int64
	I64_1 int64
	I64_2 int64
	U64   uint64
	F64   float64
	Str   string
}

func (val Value) String() string {
	if val.IsNull {
		return "NULL"
	}
	switch val.Typ.Id {
	case common.LTID_BOOLEAN:
		return fmt.Sprintf("%v", val.Bool)
	case common.LTID_TINYINT, common.LTID_SMALLINT,
		common.LTID_INTEGER, common.LTID_BIGINT, common.LTID_TIMESTAMP:
		return fmt.Sprintf("%d", val.I64)
	case common.LTID_UBIGINT:
		return fmt.Sprintf("%d", val.U64)
	case common.LTID_FLOAT, common.LTID_DOUBLE:
		return fmt.Sprintf("%v", val.F64)
	case common.LTID_VARCHAR:
		return val.Str
	case common.LTID_DECIMAL:
		if len(val.Str) != 0 {
			return val.Str
		}
		d, err := decimal.NewFromInt64(val.I64, val.I64_1, val.Typ.Scale)
		if err != nil {
			panic(err)
		}
		return d.String()
	case common.LTID_DATE:
		dat := time.Date(int(val.I64), time.Month(val.I64_1), int(val.I64_2),
			0, 0, 0, 0, time.UTC)
		return dat.Format(time.DateOnly)
	case common.LTID_HUGEINT:
		// I64_1 carries the lower half bit-for-bit, reinterpret unsigned
		h := common.Hugeint{Upper: val.I64, Lower: uint64(val.I64_1)}
		return h.String()
	default:
		panic("usp")
	}
}
