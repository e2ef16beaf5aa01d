package mailbox_test

import (
	"testing"

	"deedles.dev/deque/mailbox"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMailbox(t *testing.T) {
	var mb mailbox.Mailbox
	mb.Send(1)
	mb.Send(2)
	mb.Send(3)
	v := mailbox.Recv(&mb, func(v int) bool { return v%2 == 0 })
	if v != 2 {
		t.Fatal(v)
	}
	v = mailbox.Recv[int](&mb, nil)
	if v != 1 {
		t.Fatal(v)
	}
	v = mailbox.Recv[int](&mb, nil)
	if v != 3 {
		t.Fatal(v)
	}
	if n := mb.Len(); n != 0 {
		t.Fatal(n)
	}
}

func TestMailboxTypes(t *testing.T) {
	var mb mailbox.Mailbox
	mb.Send("a")
	mb.Send(1)
	mb.Send("b")

	n, ok := mailbox.TryRecv[int](&mb, nil)
	if !ok || n != 1 {
		t.Fatal(n, ok)
	}
	_, ok = mailbox.TryRecv[int](&mb, nil)
	if ok {
		t.Fatal("received a second int")
	}

	s, ok := mailbox.TryRecv[string](&mb, nil)
	if !ok || s != "a" {
		t.Fatal(s, ok)
	}
	if n := mb.Len(); n != 1 {
		t.Fatal(n)
	}
}

func TestMailboxBlocks(t *testing.T) {
	var mb mailbox.Mailbox
	done := make(chan string)
	go func() {
		done <- mailbox.Recv(&mb, func(v string) bool { return v == "wanted" })
	}()

	mb.Send("unwanted")
	mb.Send("wanted")
	if v := <-done; v != "wanted" {
		t.Fatal(v)
	}

	v, ok := mailbox.TryRecv[string](&mb, nil)
	if !ok || v != "unwanted" {
		t.Fatal(v, ok)
	}
}
