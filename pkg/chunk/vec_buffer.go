package chunk

import (
	"github.com/daviszhen/rowcmp/pkg/common"
	"github.com/daviszhen/rowcmp/pkg/util"
)

type VecBufferType int

const (
	//array of data
	VBT_STANDARD VecBufferType = iota
)

type VecBuffer struct {
	BufTyp VecBufferType
	Data   []byte
}

func NewBuffer(sz int) *VecBuffer {
	return &VecBuffer{
		BufTyp: VBT_STANDARD,
		Data:   util.GAlloc.Alloc(sz),
	}
}

func NewStandardBuffer(lt common.LType, cap int) *VecBuffer {
	return NewBuffer(lt.GetInternalType().Size() * cap)
}
