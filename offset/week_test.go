package offset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2012-05-07 was a Monday.
var aMonday = time.Date(2012, 5, 7, 10, 0, 0, 0, time.UTC)

func TestWeekForward(t *testing.T) {
	tests := []struct {
		name    string
		in      time.Time
		n       int
		weekday time.Weekday
		want    time.Time
	}{
		{
			name:    "same weekday moves a full week",
			in:      aMonday,
			n:       1,
			weekday: time.Monday,
			want:    aMonday.AddDate(0, 0, 7),
		},
		{
			name:    "target later in week",
			in:      aMonday,
			n:       1,
			weekday: time.Friday,
			want:    time.Date(2012, 5, 11, 10, 0, 0, 0, time.UTC),
		},
		{
			name:    "target earlier in week wraps",
			in:      time.Date(2012, 5, 9, 10, 0, 0, 0, time.UTC), // Wednesday
			n:       1,
			weekday: time.Monday,
			want:    time.Date(2012, 5, 14, 10, 0, 0, 0, time.UTC),
		},
		{
			name:    "third occurrence",
			in:      aMonday,
			n:       3,
			weekday: time.Friday,
			want:    time.Date(2012, 5, 25, 10, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Week{N: tt.n, Weekday: tt.weekday}.Forward(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.weekday, got.Weekday())
		})
	}
}

func TestWeekBackward(t *testing.T) {
	tests := []struct {
		name    string
		in      time.Time
		n       int
		weekday time.Weekday
		want    time.Time
	}{
		{
			name:    "same weekday moves a full week back",
			in:      aMonday,
			n:       1,
			weekday: time.Monday,
			want:    aMonday.AddDate(0, 0, -7),
		},
		{
			name:    "target earlier in week",
			in:      time.Date(2012, 5, 9, 10, 0, 0, 0, time.UTC), // Wednesday
			n:       1,
			weekday: time.Monday,
			want:    aMonday,
		},
		{
			name:    "target later in week wraps",
			in:      aMonday,
			n:       1,
			weekday: time.Friday,
			want:    time.Date(2012, 5, 4, 10, 0, 0, 0, time.UTC),
		},
		{
			name:    "second occurrence",
			in:      time.Date(2012, 5, 9, 10, 0, 0, 0, time.UTC),
			n:       2,
			weekday: time.Monday,
			want:    time.Date(2012, 4, 30, 10, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Week{N: tt.n, Weekday: tt.weekday}.Backward(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.weekday, got.Weekday())
		})
	}
}

func TestWeekOnBoundary(t *testing.T) {
	assert.True(t, Week{N: 1, Weekday: time.Monday}.OnBoundary(aMonday))
	assert.False(t, Week{N: 1, Weekday: time.Tuesday}.OnBoundary(aMonday))
}

func TestWeekLabel(t *testing.T) {
	assert.Equal(t, "W-MON", Week{N: 1, Weekday: time.Monday}.Label())
	assert.Equal(t, "3W-MON", Week{N: 3, Weekday: time.Monday}.Label())
	assert.Equal(t, "W-SUN", Week{N: 1, Weekday: time.Sunday}.Label())
	assert.Equal(t, "2W-THU", Week{N: 2, Weekday: time.Thursday}.Label())
}
