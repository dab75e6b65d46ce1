package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if !q.Empty() {
		t.Errorf("new queue is not empty")
	}
	if v := q.Peek(); v != 0 {
		t.Errorf("peek on empty queue gave %d, want 0", v)
	}
	_, err := q.Pop()
	var eq *EmptyQueueError
	if !errors.As(err, &eq) {
		t.Errorf("pop on empty queue gave %v, want EmptyQueueError", err)
	}
}

func TestArrayQueue_PushPop(t *testing.T) {
	q := MakeArrayQueue[int](2)
	var ref []int
	for iter := 0; iter < 5000; iter++ {
		if rg.Intn(3) > 0 {
			v := rg.Int()
			q.Push(v)
			ref = append(ref, v)
		} else {
			v, err := q.Pop()
			if len(ref) == 0 {
				if err == nil {
					t.Fatalf("pop succeeded on empty queue")
				}
				continue
			}
			if err != nil {
				t.Fatalf("pop failed with %d items left: %v", len(ref), err)
			}
			if v != ref[0] {
				t.Fatalf("pop gave %d, want %d", v, ref[0])
			}
			ref = ref[1:]
		}
		if q.Size() != uint(len(ref)) {
			t.Fatalf("size is %d, want %d", q.Size(), len(ref))
		}
		if len(ref) > 0 && q.Peek() != ref[0] {
			t.Fatalf("peek gave %d, want %d", q.Peek(), ref[0])
		}
	}
}

func TestArrayQueue_ShrinkClear(t *testing.T) {
	q := MakeArrayQueue[int](1)
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	for iter := 0; iter < 60; iter++ {
		q.Pop()
	}
	for i := 0; i < 10; i++ {
		q.Push(100 + i)
	}
	q.Shrink()
	for want := 60; want < 110; want++ {
		if v, err := q.Pop(); err != nil || v != want {
			t.Fatalf("pop gave (%d, %v), want %d", v, err, want)
		}
	}
	q.Push(1)
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Errorf("queue not empty after Clear")
	}
	q.Push(7)
	if v, _ := q.Pop(); v != 7 {
		t.Errorf("pop after Clear gave %d, want 7", v)
	}
}
