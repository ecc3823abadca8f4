package windows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultPeak = NewHourSet(16, 17, 18, 19, 20)

func TestHourSet(t *testing.T) {
	t.Run("Contains", func(t *testing.T) {
		s := NewHourSet(0, 5, 23)
		assert.True(t, s.Contains(0))
		assert.True(t, s.Contains(5))
		assert.True(t, s.Contains(23))
		assert.False(t, s.Contains(6))
	})

	t.Run("Out Of Range Ignored", func(t *testing.T) {
		s := NewHourSet(-1, 24, 25, 100)
		assert.True(t, s.Empty())
		assert.False(t, All().Contains(25))
		assert.False(t, All().Contains(-1))
	})

	t.Run("Min Max", func(t *testing.T) {
		lo, ok := defaultPeak.Min()
		require.True(t, ok)
		assert.Equal(t, 16, lo)
		hi, ok := defaultPeak.Max()
		require.True(t, ok)
		assert.Equal(t, 20, hi)

		_, ok = HourSet(0).Min()
		assert.False(t, ok)
		_, ok = HourSet(0).Max()
		assert.False(t, ok)
	})

	t.Run("Set Operations", func(t *testing.T) {
		a := NewHourSet(1, 2, 3)
		b := NewHourSet(3, 4)
		assert.Equal(t, []int{1, 2, 3, 4}, a.Union(b).Hours())
		assert.Equal(t, []int{3}, a.Intersect(b).Hours())
		assert.Equal(t, []int{1, 2}, a.Without(b).Hours())
		assert.Equal(t, 24, All().Len())
		assert.Equal(t, "[1,2,3]", a.String())
	})
}

func TestPartition(t *testing.T) {
	t.Run("Default Windows", func(t *testing.T) {
		w, err := Partition(defaultPeak, 6, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 21, 22, 23}, w.Night.Hours())
		assert.Equal(t, []int{8, 9, 10, 11, 12, 13, 14, 15}, w.Day.Hours())
		assert.Equal(t, []int{16, 17, 18, 19, 20}, w.Peak.Hours())
		assert.True(t, w.Complete())
	})

	t.Run("Peak Wins Last Peak Hour", func(t *testing.T) {
		w, err := Partition(defaultPeak, 6, 1)
		require.NoError(t, err)
		assert.Equal(t, PeriodPeak, w.Period(20))
		assert.False(t, w.Night.Contains(20))
		assert.Equal(t, PeriodNight, w.Period(21))
	})

	t.Run("Every Sunrise Partitions The Day", func(t *testing.T) {
		for sunrise := 0; sunrise < HoursPerDay; sunrise++ {
			for padding := 0; padding <= 3; padding++ {
				w, err := Partition(defaultPeak, sunrise, padding)
				require.NoError(t, err, "sunrise %d padding %d", sunrise, padding)
				assert.True(t, w.Complete(), "sunrise %d padding %d", sunrise, padding)
				assert.Equal(t, HoursPerDay, w.Night.Len()+w.Day.Len()+w.Peak.Len())
			}
		}
	})

	t.Run("Late Sunrise Swallows Day", func(t *testing.T) {
		w, err := Partition(defaultPeak, 15, 1)
		require.NoError(t, err)
		assert.True(t, w.Day.Empty())
		assert.True(t, w.Complete())
	})

	t.Run("Sentinel Hour In No Window", func(t *testing.T) {
		w, err := Partition(defaultPeak, 6, 1)
		require.NoError(t, err)
		assert.Equal(t, PeriodNone, w.Period(25))
		assert.False(t, w.Night.Contains(25))
		assert.False(t, w.Day.Contains(25))
		assert.False(t, w.Peak.Contains(25))
	})

	t.Run("Gap In Peak Repaired", func(t *testing.T) {
		w, err := Partition(NewHourSet(16, 17, 19, 20), 6, 1)
		require.Error(t, err)
		var perr *PartitionError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, []int{18}, perr.Repaired.Hours())
		assert.True(t, w.Day.Contains(18))
		assert.True(t, w.Complete())
		assert.Contains(t, err.Error(), "not contiguous")
	})

	t.Run("Empty Peak", func(t *testing.T) {
		w, err := Partition(0, 6, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no peak hours")
		assert.True(t, w.Peak.Empty())
		assert.True(t, w.Complete())
		assert.Equal(t, PeriodNight, w.Period(3))
		assert.Equal(t, PeriodDay, w.Period(12))
	})
}
