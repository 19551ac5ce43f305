package hash

import "testing"

func TestHash_Deterministic(t *testing.T) {
	t.Parallel()

	h := New([]byte("server-key"))
	a := h.Hash("hunter2")
	b := h.Hash("hunter2")
	if a != b {
		t.Fatalf("digest not deterministic: %q vs %q", a, b)
	}
	if a == "" {
		t.Fatalf("empty digest")
	}
}

func TestHash_DistinctPasswords(t *testing.T) {
	t.Parallel()

	h := New([]byte("server-key"))
	if h.Hash("hunter2") == h.Hash("hunter3") {
		t.Fatalf("different passwords produced the same digest")
	}
}

func TestHash_DistinctKeys(t *testing.T) {
	t.Parallel()

	a := New([]byte("key-a")).Hash("hunter2")
	b := New([]byte("key-b")).Hash("hunter2")
	if a == b {
		t.Fatalf("different keys produced the same digest")
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	h := New([]byte("server-key"))
	digest := h.Hash("hunter2")
	if !h.Verify("hunter2", digest) {
		t.Fatalf("correct password rejected")
	}
	if h.Verify("hunter3", digest) {
		t.Fatalf("wrong password accepted")
	}
}
