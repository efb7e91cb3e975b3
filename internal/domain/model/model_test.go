package model

import "testing"

func TestColorModeValid(t *testing.T) {
	cases := []struct {
		mode  ColorMode
		valid bool
	}{
		{ColorModeColor, true},
		{ColorModeBlackAndWhite, true},
		{"color", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := tc.mode.Valid(); got != tc.valid {
			t.Fatalf("mode %q: expected %v, got %v", tc.mode, tc.valid, got)
		}
	}
}

func TestUploadedFileCost(t *testing.T) {
	f := UploadedFile{PageCount: 3, Copies: 2}
	if got := f.Cost(2); got != 12 {
		t.Fatalf("expected cost 12, got %d", got)
	}
}

func TestOrderMutableAndFileIndex(t *testing.T) {
	o := &Order{Files: []UploadedFile{{ID: "a"}, {ID: "b"}}}
	if !o.Mutable() {
		t.Fatal("expected order without status to be mutable")
	}
	o.Status = OrderStatusFinalized
	if o.Mutable() {
		t.Fatal("expected finalized order to be immutable")
	}
	if idx := o.FileIndex("b"); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := o.FileIndex("missing"); idx != -1 {
		t.Fatalf("expected -1, got %d", idx)
	}
}

func TestQueueEntryTotalAmount(t *testing.T) {
	e := QueueEntry{Documents: []Document{{Amount: 4}, {Amount: 6}}}
	if got := e.TotalAmount(); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}
