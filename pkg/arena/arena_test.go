package arena

import "testing"

func TestAllocStringCopies(t *testing.T) {
	a := New()
	src := []byte("hello")
	s := a.AllocString(string(src))
	src[0] = 'H'
	if s != "hello" {
		t.Fatalf("AllocString did not copy: got %q", s)
	}
}

func TestAllocStringEmpty(t *testing.T) {
	a := New()
	if s := a.AllocString(""); s != "" {
		t.Fatalf("expected empty string, got %q", s)
	}
}

func TestAllocRefsLength(t *testing.T) {
	a := New()
	refs := a.AllocRefs(3)
	if len(refs) != 3 {
		t.Fatalf("expected length 3, got %d", len(refs))
	}
	refs[0], refs[1], refs[2] = 1, 2, 3

	more := a.AllocRefs(2)
	if len(more) != 2 {
		t.Fatalf("expected length 2, got %d", len(more))
	}
	// Earlier allocation must be unaffected by later ones.
	if refs[0] != 1 || refs[1] != 2 || refs[2] != 3 {
		t.Fatalf("earlier allocation corrupted: %v", refs)
	}
}

func TestAllocRefsZero(t *testing.T) {
	a := New()
	if refs := a.AllocRefs(0); refs != nil {
		t.Fatalf("expected nil for zero-length alloc, got %v", refs)
	}
}

func TestAllocRefsLargerThanChunk(t *testing.T) {
	a := New()
	big := a.AllocRefs(refChunkSize * 2)
	if len(big) != refChunkSize*2 {
		t.Fatalf("expected length %d, got %d", refChunkSize*2, len(big))
	}
}

func TestResetStartsFresh(t *testing.T) {
	a := New()
	_ = a.AllocString("some text")
	_ = a.AllocRefs(10)
	a.Reset()
	s := a.AllocString("x")
	if s != "x" {
		t.Fatalf("allocation after reset failed: %q", s)
	}
}
