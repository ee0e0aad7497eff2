package offset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthBeginForward(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{
			name: "mid month",
			in:   time.Date(2012, 5, 5, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2012, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "two steps",
			in:   time.Date(2012, 5, 5, 0, 0, 0, 0, time.UTC),
			n:    2,
			want: time.Date(2012, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "already on boundary moves a full month",
			in:   time.Date(2012, 5, 1, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2012, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "preserves clock time",
			in:   time.Date(2012, 5, 5, 13, 45, 10, 0, time.UTC),
			n:    1,
			want: time.Date(2012, 6, 1, 13, 45, 10, 0, time.UTC),
		},
		{
			name: "across year end",
			in:   time.Date(2012, 12, 15, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "leap february",
			in:   time.Date(2020, 2, 10, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthBegin{N: tt.n}.Forward(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, got.Day())
		})
	}
}

func TestMonthBeginBackward(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{
			name: "mid month snaps to own month begin",
			in:   time.Date(2012, 5, 5, 9, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2012, 5, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "on boundary steps a full month back",
			in:   time.Date(2012, 5, 1, 9, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2012, 4, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "two steps from mid month",
			in:   time.Date(2012, 5, 5, 0, 0, 0, 0, time.UTC),
			n:    2,
			want: time.Date(2012, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthBegin{N: tt.n}.Backward(tt.in))
		})
	}
}

func TestMonthBeginOnBoundary(t *testing.T) {
	assert.True(t, MonthBegin{N: 1}.OnBoundary(time.Date(2012, 5, 1, 10, 0, 0, 0, time.UTC)))
	assert.False(t, MonthBegin{N: 1}.OnBoundary(time.Date(2012, 5, 2, 0, 0, 0, 0, time.UTC)))
}

func TestMonthEndForward(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{
			name: "mid month",
			in:   time.Date(2012, 5, 5, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2012, 5, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "on boundary moves to next month end",
			in:   time.Date(2012, 5, 31, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2012, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "leap february",
			in:   time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "non leap february",
			in:   time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "two steps from january end",
			in:   time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC),
			n:    2,
			want: time.Date(2020, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthEnd{N: tt.n}.Forward(tt.in)
			assert.Equal(t, tt.want, got)
			// The result is always the last day of its month.
			assert.Equal(t, 1, got.AddDate(0, 0, 1).Day())
		})
	}
}

func TestMonthEndBackward(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{
			name: "mid month moves to previous month end",
			in:   time.Date(2012, 5, 5, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2012, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "on boundary also moves to previous month end",
			in:   time.Date(2012, 5, 31, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2012, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "into leap february",
			in:   time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthEnd{N: tt.n}.Backward(tt.in))
		})
	}
}

func TestMonthEndOnBoundary(t *testing.T) {
	assert.True(t, MonthEnd{N: 1}.OnBoundary(time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.False(t, MonthEnd{N: 1}.OnBoundary(time.Date(2021, 2, 29, 0, 0, 0, 0, time.UTC))) // normalizes to Mar 1
	assert.True(t, MonthEnd{N: 1}.OnBoundary(time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.False(t, MonthEnd{N: 1}.OnBoundary(time.Date(2012, 5, 30, 0, 0, 0, 0, time.UTC)))
}

func TestMonthLabels(t *testing.T) {
	assert.Equal(t, "MB", MonthBegin{N: 1}.Label())
	assert.Equal(t, "2MB", MonthBegin{N: 2}.Label())
	assert.Equal(t, "ME", MonthEnd{N: 1}.Label())
	assert.Equal(t, "3ME", MonthEnd{N: 3}.Label())
}
