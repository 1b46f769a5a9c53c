package command

import (
	"fmt"
	"testing"

	"github.com/atomicstack/popup-shell/internal/ids"
)

func TestQueueDrainsInEnqueueOrder(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Push(Auto, New(Selector(fmt.Sprintf("cmd-%d", i)), nil))
	}
	for i := 0; i < 5; i++ {
		entry, ok := q.Pop()
		if !ok {
			t.Fatalf("expected entry %d", i)
		}
		if want := Selector(fmt.Sprintf("cmd-%d", i)); entry.Command.Selector != want {
			t.Fatalf("expected %s, got %s", want, entry.Command.Selector)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("expected empty queue")
	}
}

func TestQueueDrainIncludesCommandsPushedMidDrain(t *testing.T) {
	q := NewQueue()
	q.Push(Auto, New("a", nil))
	q.Push(Auto, New("b", nil))

	var order []Selector
	for {
		entry, ok := q.Pop()
		if !ok {
			break
		}
		order = append(order, entry.Command.Selector)
		if entry.Command.Is("a") {
			q.Push(Auto, New("a-child", nil))
		}
	}
	want := []Selector{"a", "b", "a-child"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if !q.Empty() {
		t.Fatalf("expected queue empty after drain, len=%d", q.Len())
	}
}

func TestQueueKeepsTargets(t *testing.T) {
	q := NewQueue()
	win := ids.NewWindowID()
	q.Push(Window(win), New("x", nil))
	entry, _ := q.Pop()
	got, ok := entry.Target.WindowID()
	if !ok || got != win {
		t.Fatalf("expected window target %s, got %s", win, entry.Target)
	}
}
