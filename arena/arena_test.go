package arena

import "testing"

func TestRewindSoundness(t *testing.T) {
	a := NewSize[int](8)

	p := a.Alloc(3)
	for i := range p {
		p[i] = i + 1
	}

	if !a.RewindLast(3, p) {
		t.Fatalf("RewindLast failed on the allocation that was just made")
	}

	q := a.Alloc(3)
	if &p[0] != &q[0] {
		t.Fatalf("rewind+realloc did not reuse the same backing storage")
	}
}

func TestRewindRejectsNonTailAllocation(t *testing.T) {
	a := NewSize[int](8)

	first := a.Alloc(2)
	second := a.Alloc(2)
	_ = second

	if a.RewindLast(2, first) {
		t.Fatalf("RewindLast must fail when p is not the most recent allocation")
	}
}

func TestAllocSpansBlocks(t *testing.T) {
	a := NewSize[byte](4)

	a.Alloc(3)
	// This allocation doesn't fit in the remaining room of the first block,
	// so it must land in a freshly appended block.
	second := a.Alloc(3)
	if len(a.blocks) != 2 {
		t.Fatalf("expected a new block to be appended, got %d blocks", len(a.blocks))
	}
	if len(second) != 3 {
		t.Fatalf("expected 3 bytes, got %d", len(second))
	}
}

func TestOversizedAllocationGetsDedicatedBlock(t *testing.T) {
	a := NewSize[int](4)

	big := a.Alloc(100)
	if len(big) != 100 {
		t.Fatalf("expected 100 elements, got %d", len(big))
	}
}

func TestClearResetsHeadAndDropsTail(t *testing.T) {
	a := NewSize[int](4)

	a.Alloc(4)
	a.Alloc(4) // forces a second block
	if len(a.blocks) != 2 {
		t.Fatalf("setup: expected 2 blocks, got %d", len(a.blocks))
	}

	a.Clear()
	if len(a.blocks) != 1 {
		t.Fatalf("Clear should leave exactly the head block, got %d", len(a.blocks))
	}
	if a.blocks[0].used != 0 {
		t.Fatalf("Clear should reset the head block's used count, got %d", a.blocks[0].used)
	}
}

func TestGrowCopiesForward(t *testing.T) {
	a := NewSize[int](8)

	p := a.Alloc(2)
	p[0], p[1] = 10, 20

	grown := a.Grow(p, 2, 4)
	if grown[0] != 10 || grown[1] != 20 {
		t.Fatalf("Grow did not preserve existing contents: %v", grown)
	}
	if len(grown) != 4 {
		t.Fatalf("expected grown length 4, got %d", len(grown))
	}
}
