package chunk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviszhen/rowcmp/pkg/common"
	"github.com/daviszhen/rowcmp/pkg/util"
)

func Test_int32Vector(t *testing.T) {
	vec := NewInt32FlatVector([]int32{4, -7, 0}, 3)
	assert.False(t, vec.HasNulls())
	data := GetSliceInPhyFormatFlat[int32](vec)
	assert.Equal(t, int32(-7), data[1])

	SetNullInPhyFormatFlat(vec, 1, true)
	assert.True(t, vec.HasNulls())
	assert.True(t, IsNullInPhyFormatFlat(vec, 1))
	assert.False(t, IsNullInPhyFormatFlat(vec, 0))
	assert.True(t, vec.GetValue(1).IsNull)
}

func Test_varcharVector(t *testing.T) {
	vec := NewVarcharFlatVector([]string{"hello", "", "world"}, 3)
	data := GetSliceInPhyFormatFlat[common.String](vec)
	assert.Equal(t, "hello", data[0].String())
	assert.Equal(t, 0, data[1].Length())
	assert.Equal(t, "world", vec.GetValue(2).Str)
}

func Test_setGetValue(t *testing.T) {
	vec := NewFlatVector(common.DateType(), util.DefaultVectorSize)
	vec.SetValue(0, &Value{
		Typ:   common.DateType(),
		I64:   2024,
		I64_1: 5,
		I64_2: 31,
	})
	vec.SetValue(1, &Value{
		Typ:    common.DateType(),
		IsNull: true,
	})
	val := vec.GetValue(0)
	assert.Equal(t, int64(2024), val.I64)
	assert.Equal(t, "2024-05-31", val.String())
	assert.True(t, vec.GetValue(1).IsNull)
}

func Test_decimalVector(t *testing.T) {
	typ := common.DecimalType(18, 2)
	vec := NewFlatVector(typ, util.DefaultVectorSize)
	vec.SetValue(0, &Value{
		Typ: typ,
		Str: "12.34",
	})
	data := GetSliceInPhyFormatFlat[common.Decimal](vec)
	assert.Equal(t, "12.34", data[0].String())
}

func Test_constVector(t *testing.T) {
	vec := NewConstVector(common.IntegerType())
	require.True(t, vec.PhyFormat().IsConst())
	data := GetSliceInPhyFormatConst[int32](vec)
	data[0] = 7
	// every row of a constant vector reads slot 0
	assert.Equal(t, int64(7), vec.GetValue(5).I64)
	assert.NotEmpty(t, GetDataInPhyFormatConst(vec))

	assert.False(t, IsNullInPhyFormatConst(vec))
	SetNullInPhyFormatConst(vec, true)
	assert.True(t, IsNullInPhyFormatConst(vec))
	assert.True(t, vec.GetValue(3).IsNull)
}

func Test_largeVectorMaskStaysLazy(t *testing.T) {
	// a column bigger than one standard vector with no nulls must not
	// materialize a mask
	cap := 3 * util.DefaultVectorSize
	vec := NewFlatVector(common.IntegerType(), cap)
	assert.False(t, vec.HasNulls())

	SetNullInPhyFormatFlat(vec, 5000, true)
	assert.True(t, vec.HasNulls())
	assert.True(t, IsNullInPhyFormatFlat(vec, 5000))
	assert.False(t, IsNullInPhyFormatFlat(vec, uint64(cap-1)))
	assert.False(t, IsNullInPhyFormatFlat(vec, 0))
}

func Test_hugeintValueString(t *testing.T) {
	vec := NewFlatVector(common.HugeintType(), util.DefaultVectorSize)
	data := GetSliceInPhyFormatFlat[common.Hugeint](vec)
	// lower half above MaxInt64 must survive the value boxing
	data[0] = common.Hugeint{Upper: 0, Lower: uint64(1)<<63 + 1}
	data[1] = common.Hugeint{Upper: -1, Lower: math.MaxUint64}
	data[2] = common.Hugeint{Upper: 1, Lower: 0}
	assert.Equal(t, "9223372036854775809", vec.GetValue(0).String())
	assert.Equal(t, "-1", vec.GetValue(1).String())
	assert.Equal(t, "18446744073709551616", vec.GetValue(2).String())
}

func Test_chunk(t *testing.T) {
	typs := []common.LType{common.IntegerType(), common.VarcharType()}
	data := &Chunk{}
	data.Init(typs, util.DefaultVectorSize)
	require.Equal(t, 2, data.ColumnCount())
	require.Equal(t, util.DefaultVectorSize, data.Cap())

	data.SetValue(0, 0, &Value{Typ: typs[0], I64: 9})
	data.SetValue(1, 0, &Value{Typ: typs[1], Str: "ok"})
	data.SetCard(1)
	assert.Equal(t, 1, data.Card())
	assert.Equal(t, "9", data.GetValue(0, 0).String())
	assert.Equal(t, "ok", data.GetValue(1, 0).String())
	assert.Equal(t, typs, data.Types())
}
