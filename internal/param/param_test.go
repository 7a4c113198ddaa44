package param

import (
	"testing"

	"github.com/osuushi/lineintersect/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/alecthomas/kingpin.v2"
)

func TestPointValue(t *testing.T) {
	p := advanced.Point{X: 1, Y: 2}
	v := Point(&p)
	assert.Equal(t, "(1, 2)", v.String())
	assert.Equal(t, p, v.Get())

	for _, text := range []string{"150,170", " 150 , 170 ", "(150, 170)", "150 170"} {
		p = advanced.Point{}
		require.NoError(t, v.Set(text), text)
		assert.Equal(t, advanced.Point{X: 150, Y: 170}, p, text)
	}

	require.NoError(t, v.Set("-3,-4"))
	assert.Equal(t, advanced.Point{X: -3, Y: -4}, p)

	for _, text := range []string{"", "1", "1,2,3", "a,2", "1,b"} {
		assert.Error(t, v.Set(text), text)
	}
	// A failed set leaves the value alone
	assert.Equal(t, advanced.Point{X: -3, Y: -4}, p)
}

func TestUint32Value(t *testing.T) {
	var n uint32 = 5
	v := Uint32(&n)
	assert.Equal(t, "5", v.String())
	assert.Equal(t, uint32(5), v.Get())

	require.NoError(t, v.Set("10"))
	assert.Equal(t, uint32(10), n)

	assert.Error(t, v.Set("-1"))
	assert.Error(t, v.Set("4294967296"))
	assert.Equal(t, uint32(10), n)
}

func TestAssign(t *testing.T) {
	start := advanced.Point{X: 1, Y: 1}
	var stroke uint32 = 1
	params := []Parameter{
		New("start", Point(&start)),
		New("stroke", Uint32(&stroke)),
	}

	require.NoError(t, Assign(params, "start", "7,8"))
	require.NoError(t, Assign(params, "stroke", "3"))
	assert.Equal(t, advanced.Point{X: 7, Y: 8}, start)
	assert.Equal(t, uint32(3), stroke)

	assert.EqualError(t, Assign(params, "end", "1,1"), `unknown parameter "end"`)
	assert.Error(t, Assign(params, "stroke", "thick"))

	assert.Equal(t, "start (7, 8)", params[0].String())
}

// Parameters bind straight to kingpin flags, and parsing writes through to the
// underlying field.
func TestParameterAsFlag(t *testing.T) {
	end := advanced.Point{X: 150, Y: 170}
	p := New("end", Point(&end))

	app := kingpin.New("test", "")
	app.Flag(p.Name, "").SetValue(p.Value)
	_, err := app.Parse([]string{"--end=12,34"})
	require.NoError(t, err)
	assert.Equal(t, advanced.Point{X: 12, Y: 34}, end)
}
