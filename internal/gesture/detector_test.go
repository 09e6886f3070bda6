package gesture

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

type recorder struct{ got []string }

func (r *recorder) add(format string, args ...any) { r.got = append(r.got, fmt.Sprintf(format, args...)) }

func (r *recorder) OnDown(x, y float64)               { r.add("down %v,%v", x, y) }
func (r *recorder) OnShowPress(x, y float64)          { r.add("show %v,%v", x, y) }
func (r *recorder) OnSingleTapUp(x, y float64)        { r.add("tapup %v,%v", x, y) }
func (r *recorder) OnSingleTapConfirmed(x, y float64) { r.add("tap %v,%v", x, y) }
func (r *recorder) OnDoubleTap(x, y float64)          { r.add("double %v,%v", x, y) }
func (r *recorder) OnLongPress(x, y float64)          { r.add("long %v,%v", x, y) }
func (r *recorder) OnScroll(dx, dy float64)           { r.add("scroll %v,%v", dx, dy) }
func (r *recorder) OnFling(vx, vy float64)            { r.add("fling %v,%v", vx, vy) }

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

func TestGestures(t *testing.T) {
	tests := []struct {
		name string
		feed func(d *Detector)
		want []string
	}{
		{
			name: "single tap waits for timeout",
			feed: func(d *Detector) {
				d.Down(10, 10, at(0))
				d.Up(10, 10, at(50))
				d.Poll(at(349))
			},
			want: []string{"down 10,10", "tapup 10,10"},
		},
		{
			name: "single tap confirmed",
			feed: func(d *Detector) {
				d.Down(10, 10, at(0))
				d.Up(10, 10, at(50))
				d.Poll(at(350))
			},
			want: []string{"down 10,10", "tapup 10,10", "tap 10,10"},
		},
		{
			name: "jitter inside slop is still a tap",
			feed: func(d *Detector) {
				d.Down(10, 10, at(0))
				d.Move(13, 14, at(20))
				d.Up(13, 14, at(40))
				d.Poll(at(400))
			},
			want: []string{"down 10,10", "tapup 13,14", "tap 13,14"},
		},
		{
			name: "show press before a slow tap",
			feed: func(d *Detector) {
				d.Down(7, 8, at(0))
				d.Poll(at(100))
				d.Up(7, 8, at(150))
				d.Poll(at(450))
			},
			want: []string{"down 7,8", "show 7,8", "tapup 7,8", "tap 7,8"},
		},
		{
			name: "double tap",
			feed: func(d *Detector) {
				d.Down(10, 10, at(0))
				d.Up(10, 10, at(50))
				d.Down(12, 11, at(200))
				d.Up(12, 11, at(250))
				d.Poll(at(1000))
			},
			want: []string{"down 10,10", "tapup 10,10", "down 12,11", "double 12,11"},
		},
		{
			name: "second down after timeout is a new tap",
			feed: func(d *Detector) {
				d.Down(10, 10, at(0))
				d.Up(10, 10, at(50))
				d.Down(10, 10, at(400))
				d.Up(10, 10, at(450))
				d.Poll(at(750))
			},
			want: []string{"down 10,10", "tapup 10,10", "tap 10,10", "down 10,10", "tapup 10,10", "tap 10,10"},
		},
		{
			name: "far second down confirms the first tap",
			feed: func(d *Detector) {
				d.Down(10, 10, at(0))
				d.Up(10, 10, at(50))
				d.Down(300, 300, at(100))
			},
			want: []string{"down 10,10", "tapup 10,10", "tap 10,10", "down 300,300"},
		},
		{
			name: "long press",
			feed: func(d *Detector) {
				d.Down(5, 5, at(0))
				d.Poll(at(500))
				d.Up(5, 5, at(800))
				d.Poll(at(2000))
			},
			want: []string{"down 5,5", "show 5,5", "long 5,5"},
		},
		{
			name: "scroll without fling",
			feed: func(d *Detector) {
				d.Down(0, 0, at(0))
				d.Move(20, 0, at(50))
				d.Move(21, 0, at(1100))
				d.Up(21, 0, at(1200))
				d.Poll(at(5000))
			},
			want: []string{"down 0,0", "scroll -20,0", "scroll -1,0"},
		},
		{
			name: "fling",
			feed: func(d *Detector) {
				d.Down(0, 0, at(0))
				d.Move(0, 50, at(50))
				d.Up(0, 100, at(100))
			},
			want: []string{"down 0,0", "scroll 0,-50", "scroll 0,-50", "fling 0,1000"},
		},
		{
			name: "move without press",
			feed: func(d *Detector) {
				d.Move(50, 50, at(0))
				d.Up(50, 50, at(10))
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			tt.feed(NewDetector(DefaultConfig(), r))
			if !reflect.DeepEqual(r.got, tt.want) {
				t.Errorf("got  %q\nwant %q", r.got, tt.want)
			}
		})
	}
}

func TestPollDeadlines(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)
	if _, ok := d.Poll(at(0)); ok {
		t.Fatal("idle detector reports a deadline")
	}

	d.Down(0, 0, at(0))
	if wait, ok := d.Poll(at(50)); !ok || wait != 50*time.Millisecond {
		t.Errorf("pressed: wait = %v, %v; want 50ms to show press", wait, ok)
	}
	if wait, ok := d.Poll(at(100)); !ok || wait != 400*time.Millisecond {
		t.Errorf("pressed: wait = %v, %v; want 400ms", wait, ok)
	}

	d.Up(0, 0, at(100))
	if wait, ok := d.Poll(at(150)); !ok || wait != 250*time.Millisecond {
		t.Errorf("released: wait = %v, %v; want 250ms", wait, ok)
	}

	d.Poll(at(400))
	if _, ok := d.Poll(at(401)); ok {
		t.Error("deadline left after confirmation")
	}
}

func TestSinksFanOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	s := Sinks{a, NopSink{}, b}
	s.OnShowPress(0, 0)
	s.OnSingleTapConfirmed(1, 2)
	s.OnScroll(3, 4)
	want := []string{"show 0,0", "tap 1,2", "scroll 3,4"}
	if !reflect.DeepEqual(a.got, want) || !reflect.DeepEqual(b.got, want) {
		t.Errorf("a = %q, b = %q", a.got, b.got)
	}
}
