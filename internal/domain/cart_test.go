package domain

import "testing"

func item(id string, price int64) ItemSummary {
	return ItemSummary{ID: id, Name: "Item " + id, Price: price, Image: "/img/" + id + ".jpg"}
}

func TestCartAddDistinctItems(t *testing.T) {
	var c Cart
	c.AddItem(item("p1", 1000))
	c.AddItem(item("p2", 2000))
	c.AddItem(item("p3", 3000))

	if got := c.TotalItems(); got != 3 {
		t.Fatalf("expected 3 total items, got %d", got)
	}
	for _, line := range c.Lines {
		if line.Quantity != 1 {
			t.Fatalf("expected quantity 1 for %s, got %d", line.ID, line.Quantity)
		}
	}
}

func TestCartAddSameItemTwiceMergesLines(t *testing.T) {
	var c Cart
	c.AddItem(item("p1", 1000))
	c.AddItem(item("p1", 1000))

	if len(c.Lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 2 || c.TotalItems() != 2 {
		t.Fatalf("expected quantity 2, got line=%d total=%d", c.Lines[0].Quantity, c.TotalItems())
	}
}

func TestCartAddOpensDrawer(t *testing.T) {
	var c Cart
	if c.Open {
		t.Fatalf("new cart should start closed")
	}
	c.AddItem(item("p1", 1000))
	if !c.Open {
		t.Fatalf("add should open the drawer")
	}
	c.SetOpen(false)
	if c.Open || len(c.Lines) != 1 {
		t.Fatalf("SetOpen must only touch the flag")
	}
}

func TestCartUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -5} {
		var c Cart
		c.AddItem(item("p1", 1000))
		c.UpdateQuantity("p1", qty)
		if len(c.Lines) != 0 {
			t.Fatalf("quantity %d should remove the line, got %d lines", qty, len(c.Lines))
		}
	}
}

func TestCartUpdateQuantitySetsValue(t *testing.T) {
	var c Cart
	c.AddItem(item("p1", 1000))
	c.UpdateQuantity("p1", 7)
	if c.Lines[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", c.Lines[0].Quantity)
	}
}

func TestCartAbsentIDsAreNoOps(t *testing.T) {
	var c Cart
	c.AddItem(item("p1", 1000))

	c.RemoveItem("ghost")
	c.UpdateQuantity("ghost", 5)

	if len(c.Lines) != 1 || c.Lines[0].ID != "p1" || c.Lines[0].Quantity != 1 {
		t.Fatalf("cart changed by absent-id operations: %+v", c.Lines)
	}
}

func TestCartClear(t *testing.T) {
	var c Cart
	c.AddItem(item("p1", 1000))
	c.AddItem(item("p2", 2000))
	c.Clear()
	if c.TotalItems() != 0 || c.TotalPrice() != 0 {
		t.Fatalf("expected empty cart, got items=%d price=%d", c.TotalItems(), c.TotalPrice())
	}
}

func TestCartInsertionOrderPreserved(t *testing.T) {
	var c Cart
	c.AddItem(item("b", 1))
	c.AddItem(item("a", 1))
	c.AddItem(item("c", 1))
	c.AddItem(item("a", 1)) // merge, keeps position

	want := []string{"b", "a", "c"}
	if len(c.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(c.Lines))
	}
	for i, id := range want {
		if c.Lines[i].ID != id {
			t.Fatalf("expected %s at position %d, got %s", id, i, c.Lines[i].ID)
		}
	}
}

func TestCartTotalPriceTracksMutations(t *testing.T) {
	var c Cart
	c.AddItem(item("p1", 1000))
	c.AddItem(item("p2", 2000))
	c.UpdateQuantity("p1", 3)

	if got := c.TotalItems(); got != 4 {
		t.Fatalf("expected 4 items, got %d", got)
	}
	if got := c.TotalPrice(); got != 5000 {
		t.Fatalf("expected total 5000, got %d", got)
	}

	c.RemoveItem("p2")
	if got := c.TotalPrice(); got != 3000 {
		t.Fatalf("expected total 3000 after remove, got %d", got)
	}
}
