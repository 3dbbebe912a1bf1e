package market

// ShopTrigger tracks contact between the player and a shop NPC.
// The shop opens on the interact key while touching and closes as soon as
// contact is lost.
type ShopTrigger struct {
	ShopID   string
	touching bool
	open     bool
}

// Update is called once per frame. It returns the open state and whether it
// changed this frame.
func (t *ShopTrigger) Update(touching, interact bool) (open, changed bool) {
	was := t.open
	t.touching = touching
	switch {
	case !touching:
		t.open = false
	case interact && !t.open:
		t.open = true
	}
	return t.open, t.open != was
}

func (t *ShopTrigger) Touching() bool { return t.touching }
func (t *ShopTrigger) Open() bool     { return t.open }

// Dismiss closes the shop without requiring contact to end.
func (t *ShopTrigger) Dismiss() { t.open = false }
