package chunk

import (
	"github.com/daviszhen/rowcmp/pkg/common"
	"github.com/daviszhen/rowcmp/pkg/util"
)

// Chunk is the table view: an ordered list of column views sharing one
// row count. Column order is sort-key precedence, most significant first.
type Chunk struct {
	Data  []*Vector
	Count int
	_Cap  int
}

func (c *Chunk) Init(types []common.LType, cap int) {
	c._Cap = cap
	c.Data = nil
	for _, lType := range types {
		c.Data = append(c.Data, NewVector(lType, c._Cap))
	}
}

func (c *Chunk) Cap() int {
	return c._Cap
}

func (c *Chunk) SetCap(cap int) {
	c._Cap = cap
}

func (c *Chunk) SetCard(count int) {
	util.AssertFunc(count <= c._Cap)
	c.Count = count
}

func (c *Chunk) Card() int {
	return c.Count
}

func (c *Chunk) ColumnCount() int {
	if c == nil {
		return 0
	}
	return len(c.Data)
}

func (c *Chunk) Types() []common.LType {
	typs := make([]common.LType, 0, c.ColumnCount())
	for _, vec := range c.Data {
		typs = append(typs, vec.Typ())
	}
	return typs
}

func (c *Chunk) GetValue(colIdx int, rowIdx int) *Value {
	util.AssertFunc(colIdx < c.ColumnCount())
	return c.Data[colIdx].GetValue(rowIdx)
}

func (c *Chunk) SetValue(colIdx int, rowIdx int, val *Value) {
	util.AssertFunc(colIdx < c.ColumnCount())
	c.Data[colIdx].SetValue(rowIdx, val)
}

func (c *Chunk) Print(prefix string) {
	for j := 0; j < c.ColumnCount(); j++ {
		c.Data[j].Print2(prefix, c.Card())
	}
}
