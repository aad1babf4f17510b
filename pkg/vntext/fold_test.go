package vntext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndtrung/warehouse-backoffice/pkg/vntext"
)

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Quản trị viên":  "quan tri vien",
		"Giám đốc":       "giam doc",
		"Thủ kho":        "thu kho",
		"Kế toán":        "ke toan",
		"Đặng Văn Lâm":   "dang van lam",
		"plain ascii":    "plain ascii",
		"":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, vntext.Fold(in), "Fold(%q)", in)
	}
}

func TestFoldKey(t *testing.T) {
	assert.Equal(t, "tranthibichngoc", vntext.FoldKey("Trần Thị Bích Ngọc"))
	assert.Equal(t, "nguyenvanan", vntext.FoldKey("Nguyễn Văn An"))
	assert.Equal(t, "abc123", vntext.FoldKey(" a-b c 1.2,3 "))
}
