package common

import (
	"unsafe"

	"github.com/daviszhen/rowcmp/pkg/util"
)

type String struct {
	Len  int
	Data unsafe.Pointer
}

func (s *String) DataSlice() []byte {
	return util.PointerToSlice[byte](s.Data, s.Len)
}

func (s *String) String() string {
	t := s.DataSlice()
	return string(t)
}

func (s *String) Equal(o *String) bool {
	if s.Len != o.Len {
		return false
	}
	return util.PointerMemcmp(s.Data, o.Data, s.Len, o.Len) == 0
}

func (s *String) Less(o *String) bool {
	return util.PointerMemcmp(s.Data, o.Data, s.Len, o.Len) < 0
}

func (s *String) Length() int {
	return s.Len
}
