package salessvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(5), toInt64(int32(5)))
	assert.Equal(t, int64(5), toInt64(int64(5)))
	assert.Equal(t, int64(5), toInt64(5.7))
	assert.Equal(t, int64(0), toInt64(nil))
	assert.Equal(t, int64(0), toInt64("abc"))
}

func TestToFloat64(t *testing.T) {
	assert.Equal(t, 5.5, toFloat64(5.5))
	assert.Equal(t, 5.0, toFloat64(int32(5)))
	assert.Equal(t, 5.0, toFloat64(int64(5)))
	assert.Equal(t, 0.0, toFloat64(nil))
}

func TestToSortedStrings(t *testing.T) {
	values := []interface{}{"South", "North", "", nil, 42, "Central"}
	assert.Equal(t, []string{"Central", "North", "South"}, toSortedStrings(values))

	// Input rỗng trả về slice rỗng khác nil
	result := toSortedStrings(nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
