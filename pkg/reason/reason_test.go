package reason

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	t.Run("Zero Value", func(t *testing.T) {
		var l Log
		assert.Equal(t, "", l.String())
		assert.Equal(t, 0, l.Len())
		assert.Empty(t, l.Notes())
	})

	t.Run("Add Joins With Space", func(t *testing.T) {
		l := New("Powston said: hold.").Add("Month: 1, Hour: 4.")
		assert.Equal(t, "Powston said: hold. Month: 1, Hour: 4.", l.String())
		assert.Equal(t, 2, l.Len())
	})

	t.Run("Add Does Not Mutate Receiver", func(t *testing.T) {
		base := New("a.")
		left := base.Add("left.")
		right := base.Add("right.")
		assert.Equal(t, "a.", base.String())
		assert.Equal(t, "a. left.", left.String())
		assert.Equal(t, "a. right.", right.String())
	})

	t.Run("Empty Notes Dropped", func(t *testing.T) {
		l := New("", "  ", "x.")
		assert.Equal(t, []string{"x."}, l.Notes())
	})

	t.Run("Addf", func(t *testing.T) {
		l := Log{}.Addf("Z-Score: %.2f.", 1.234)
		assert.Equal(t, "Z-Score: 1.23.", l.String())
	})

	t.Run("Merge", func(t *testing.T) {
		l := New("a.").Merge(New("b.", "c."))
		assert.Equal(t, "a. b. c.", l.String())
	})

	t.Run("Notes Returns Copy", func(t *testing.T) {
		l := New("a.")
		notes := l.Notes()
		notes[0] = "changed"
		assert.Equal(t, "a.", l.String())
	})
}
